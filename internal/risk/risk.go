// Package risk implements the recovery risk scoring model.
//
// Five self-reported signals (pain, steps, medicine adherence, sleep, mood)
// are normalized to [0,1] sub-scores, combined as a weighted sum and passed
// through a nonlinear amplification step. The same formula is used everywhere
// a score is needed: report submission, the doctor dashboard, the patient
// summary and the `system score` CLI utility.
package risk

import (
	"math"
	"strings"
	"time"
)

// Level is the three-way risk category derived from the score.
type Level string

const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
)

// Factor weights. Pain dominates; the remaining signals influence recovery
// but less heavily. Weights sum to 1.0.
const (
	weightPain     = 0.55
	weightSteps    = 0.15
	weightMedicine = 0.10
	weightSleep    = 0.10
	weightMood     = 0.10
)

// amplifyExponent > 1 suppresses low scores and amplifies high ones,
// concentrating resolution at the dangerous end of the scale.
const amplifyExponent = 1.4

// Score thresholds for categorization, checked high to low.
const (
	thresholdHigh     = 65.0
	thresholdModerate = 40.0
)

// Canned recommendations per level.
const (
	recommendationHigh     = "Severe pain or poor recovery indicators. Immediate medical attention recommended."
	recommendationModerate = "Monitor condition closely and ensure regular follow-ups."
	recommendationLow      = "Patient is recovering well. Continue current care plan."
)

var (
	positiveMoods = map[string]struct{}{"happy": {}, "energetic": {}, "relaxed": {}}
	negativeMoods = map[string]struct{}{"sad": {}, "angry": {}, "tired": {}, "stressed": {}}
)

// Input holds the five patient-reported signals. SleepHours and Mood are
// optional: a nil SleepHours means the patient did not report sleep, an empty
// Mood means no mood was reported.
type Input struct {
	Steps         int
	PainLevel     int
	MedicineTaken bool
	SleepHours    *float64
	Mood          string
}

// Assessment is the scorer output. EvaluatedAt is informational only; two
// calls with identical inputs always produce identical RiskScore, RiskLevel
// and Recommendation.
type Assessment struct {
	RiskScore      float64   `json:"risk_score"`
	RiskLevel      Level     `json:"risk_level"`
	Recommendation string    `json:"ai_recommendation"`
	EvaluatedAt    time.Time `json:"evaluated_on"`
}

// Score computes the risk assessment for one report. It is pure and total:
// out-of-range pain is clamped, unknown moods fall back to the neutral
// sub-score, and no input combination produces an error.
func Score(in Input) Assessment {
	total := weightPain*painScore(in.PainLevel) +
		weightSteps*stepsScore(in.Steps) +
		weightMedicine*medicineScore(in.MedicineTaken) +
		weightSleep*sleepScore(in.SleepHours) +
		weightMood*moodScore(in.Mood)

	score := round2(math.Pow(total, amplifyExponent) * 100)

	level, recommendation := categorize(score)

	return Assessment{
		RiskScore:      score,
		RiskLevel:      level,
		Recommendation: recommendation,
		EvaluatedAt:    time.Now().UTC(),
	}
}

func painScore(level int) float64 {
	return math.Min(math.Max(float64(level)/10.0, 0), 1.0)
}

// stepsScore maps daily ambulation to risk: fewer steps, higher risk.
func stepsScore(steps int) float64 {
	switch {
	case steps <= 1000:
		return 1.0
	case steps <= 3000:
		return 0.8
	case steps <= 6000:
		return 0.5
	case steps <= 10000:
		return 0.3
	default:
		return 0.1
	}
}

func medicineScore(taken bool) float64 {
	if taken {
		return 0.05
	}
	return 0.35
}

// sleepScore treats unreported sleep as unknown (0.3), not as zero hours.
func sleepScore(hours *float64) float64 {
	switch {
	case hours == nil:
		return 0.3
	case *hours < 5:
		return 0.7
	case *hours < 7:
		return 0.4
	default:
		return 0.1
	}
}

func moodScore(mood string) float64 {
	m := strings.ToLower(strings.TrimSpace(mood))
	if _, ok := positiveMoods[m]; ok {
		return 0.1
	}
	if _, ok := negativeMoods[m]; ok {
		return 0.6
	}
	// absent, "neutral" and anything unrecognized
	return 0.3
}

func categorize(score float64) (Level, string) {
	switch {
	case score >= thresholdHigh:
		return LevelHigh, recommendationHigh
	case score >= thresholdModerate:
		return LevelModerate, recommendationModerate
	default:
		return LevelLow, recommendationLow
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
