package risk

import (
	"math"
	"testing"
)

func sleep(h float64) *float64 { return &h }

func TestScoreScenarios(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantScore float64
		wantLevel Level
	}{
		{
			name:      "active patient with severe pain",
			in:        Input{Steps: 15000, PainLevel: 10, MedicineTaken: true, SleepHours: sleep(8), Mood: "happy"},
			wantScore: 47.77,
			wantLevel: LevelModerate,
		},
		{
			name:      "low activity, high pain, missed medicine",
			in:        Input{Steps: 2000, PainLevel: 7, MedicineTaken: false, SleepHours: sleep(5), Mood: "sad"},
			wantScore: 53.54,
			wantLevel: LevelModerate,
		},
		{
			name:      "moderate activity, mild pain",
			in:        Input{Steps: 8000, PainLevel: 3, MedicineTaken: true, SleepHours: sleep(7), Mood: "neutral"},
			wantScore: 14.76,
			wantLevel: LevelLow,
		},
		{
			name:      "near-full recovery",
			in:        Input{Steps: 12000, PainLevel: 1, MedicineTaken: true, SleepHours: sleep(8), Mood: "relaxed"},
			wantScore: 3.71,
			wantLevel: LevelLow,
		},
		{
			name:      "bedridden with severe pain and poor sleep",
			in:        Input{Steps: 0, PainLevel: 10, MedicineTaken: false, SleepHours: sleep(4), Mood: "sad"},
			wantScore: 81.62,
			wantLevel: LevelHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.in)
			if got.RiskScore != tt.wantScore {
				t.Errorf("Score() risk_score = %v, want %v", got.RiskScore, tt.wantScore)
			}
			if got.RiskLevel != tt.wantLevel {
				t.Errorf("Score() risk_level = %v, want %v", got.RiskLevel, tt.wantLevel)
			}
		})
	}
}

func TestStepsBucketBoundaries(t *testing.T) {
	// Exact bucket edges: 1000 belongs to the lowest-activity bucket,
	// 10000 to the second-highest, no off-by-one.
	tests := []struct {
		steps int
		want  float64
	}{
		{0, 1.0},
		{1000, 1.0},
		{1001, 0.8},
		{3000, 0.8},
		{3001, 0.5},
		{6000, 0.5},
		{6001, 0.3},
		{10000, 0.3},
		{10001, 0.1},
	}

	for _, tt := range tests {
		if got := stepsScore(tt.steps); got != tt.want {
			t.Errorf("stepsScore(%d) = %v, want %v", tt.steps, got, tt.want)
		}
	}
}

func TestSleepScore(t *testing.T) {
	if got := sleepScore(nil); got != 0.3 {
		t.Errorf("sleepScore(nil) = %v, want 0.3 (unknown, not zero hours)", got)
	}

	tests := []struct {
		hours float64
		want  float64
	}{
		{0, 0.7},
		{4.9, 0.7},
		{5, 0.4},
		{6.9, 0.4},
		{7, 0.1},
		{12, 0.1},
	}
	for _, tt := range tests {
		if got := sleepScore(&tt.hours); got != tt.want {
			t.Errorf("sleepScore(%v) = %v, want %v", tt.hours, got, tt.want)
		}
	}
}

func TestMoodCaseInsensitive(t *testing.T) {
	base := Input{Steps: 4000, PainLevel: 4, MedicineTaken: true, SleepHours: sleep(6)}

	for _, mood := range []string{"happy", "HAPPY", "Happy", " happy "} {
		in := base
		in.Mood = mood
		if got, want := Score(in).RiskScore, Score(Input{Steps: 4000, PainLevel: 4, MedicineTaken: true, SleepHours: sleep(6), Mood: "happy"}).RiskScore; got != want {
			t.Errorf("mood %q: risk_score = %v, want %v", mood, got, want)
		}
	}

	if moodScore("ANGRY") != moodScore("angry") {
		t.Error("moodScore should be case-insensitive for negative moods")
	}
	if moodScore("") != 0.3 || moodScore("neutral") != 0.3 || moodScore("confused") != 0.3 {
		t.Error("absent, neutral and unrecognized moods should all score 0.3")
	}
}

func TestMonotonicInPain(t *testing.T) {
	prev := -1.0
	for pain := 0; pain <= 10; pain++ {
		got := Score(Input{Steps: 5000, PainLevel: pain, MedicineTaken: true, SleepHours: sleep(7), Mood: "neutral"})
		if got.RiskScore < prev {
			t.Errorf("risk_score decreased at pain_level %d: %v < %v", pain, got.RiskScore, prev)
		}
		prev = got.RiskScore
	}
}

func TestScoreRangeAndLevelConsistency(t *testing.T) {
	moods := []string{"", "happy", "sad", "neutral"}
	sleeps := []*float64{nil, sleep(3), sleep(6), sleep(9)}
	steps := []int{0, 500, 2000, 5000, 9000, 20000}

	for _, m := range moods {
		for _, sl := range sleeps {
			for _, st := range steps {
				for pain := 0; pain <= 10; pain += 2 {
					for _, med := range []bool{true, false} {
						got := Score(Input{Steps: st, PainLevel: pain, MedicineTaken: med, SleepHours: sl, Mood: m})
						if got.RiskScore < 0 || got.RiskScore > 100 {
							t.Fatalf("risk_score out of range: %v", got.RiskScore)
						}
						wantLevel := LevelLow
						if got.RiskScore >= 65 {
							wantLevel = LevelHigh
						} else if got.RiskScore >= 40 {
							wantLevel = LevelModerate
						}
						if got.RiskLevel != wantLevel {
							t.Fatalf("level %q inconsistent with score %v", got.RiskLevel, got.RiskScore)
						}
						if got.Recommendation == "" {
							t.Fatal("recommendation must never be empty")
						}
					}
				}
			}
		}
	}
}

func TestPainClamped(t *testing.T) {
	// The scorer is total: out-of-domain pain is clamped, never an error.
	low := Score(Input{Steps: 5000, PainLevel: -3, MedicineTaken: true})
	zero := Score(Input{Steps: 5000, PainLevel: 0, MedicineTaken: true})
	if low.RiskScore != zero.RiskScore {
		t.Errorf("negative pain should clamp to 0: %v != %v", low.RiskScore, zero.RiskScore)
	}

	high := Score(Input{Steps: 5000, PainLevel: 99, MedicineTaken: true})
	ten := Score(Input{Steps: 5000, PainLevel: 10, MedicineTaken: true})
	if high.RiskScore != ten.RiskScore {
		t.Errorf("pain above 10 should clamp to 10: %v != %v", high.RiskScore, ten.RiskScore)
	}
}

func TestIdempotent(t *testing.T) {
	in := Input{Steps: 3200, PainLevel: 6, MedicineTaken: false, SleepHours: sleep(5.5), Mood: "tired"}
	a := Score(in)
	b := Score(in)
	if a.RiskScore != b.RiskScore || a.RiskLevel != b.RiskLevel || a.Recommendation != b.Recommendation {
		t.Errorf("Score() not deterministic: %+v vs %+v", a, b)
	}
}

func TestRoundedToTwoDecimals(t *testing.T) {
	got := Score(Input{Steps: 2000, PainLevel: 7, MedicineTaken: false, SleepHours: sleep(5), Mood: "sad"}).RiskScore
	if got != math.Round(got*100)/100 {
		t.Errorf("risk_score not rounded to 2 decimals: %v", got)
	}
}
