package report

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/directory"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/risk"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/store"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/email"
)

var reSlug = regexp.MustCompile(`[^a-z0-9]+`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	Name          string
	Department    string
	PainLevel     int
	StepsWalked   int
	MedicineTaken bool
	SleepHours    *float64
	Mood          string
	Notes         string
}

// Summary is the patient-facing view of their latest report: the raw signals
// plus risk fields recomputed from them at read time.
type Summary struct {
	Report     store.PatientReport `json:"report"`
	Assessment risk.Assessment     `json:"assessment"`
}

type Prescription struct {
	DoctorNotes string    `json:"doctor_notes"`
	Doctor      string    `json:"doctor"`
	WrittenOn   time.Time `json:"written_on"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*store.PatientReport, error)
	LatestSummary(ctx context.Context, name string) (*Summary, error)
	LatestPrescription(ctx context.Context, name string) (*Prescription, error)
}

// ReportStore is the subset of store operations the service needs.
type ReportStore interface {
	CreateReport(ctx context.Context, r *store.PatientReport) error
	ReportsByName(ctx context.Context, name string) ([]store.PatientReport, error)
	DoctorByName(ctx context.Context, name string) (*store.Doctor, error)
}

// Mailer sends the high-risk alert. Satisfied by *email.Client.
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, m email.Message) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reportService struct {
	db   ReportStore
	mail Mailer
	log  *slog.Logger

	now func() time.Time
}

func New(db ReportStore, mail Mailer, log *slog.Logger) Service {
	return &reportService{
		db:   db,
		mail: mail,
		log:  log,
		now:  time.Now,
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func (s *reportService) Submit(ctx context.Context, req SubmitRequest) (*store.PatientReport, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Department = strings.TrimSpace(req.Department)

	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.PainLevel < 0 || req.PainLevel > 10 {
		return nil, ErrPainOutOfRange
	}
	if req.StepsWalked < 0 {
		return nil, ErrNegativeSteps
	}
	if req.SleepHours != nil && *req.SleepHours < 0 {
		return nil, ErrNegativeSleep
	}

	submittedAt := s.now().UTC()

	assessment := risk.Score(risk.Input{
		Steps:         req.StepsWalked,
		PainLevel:     req.PainLevel,
		MedicineTaken: req.MedicineTaken,
		SleepHours:    req.SleepHours,
		Mood:          req.Mood,
	})

	r := &store.PatientReport{
		ID:             docID(req.Name, submittedAt),
		Name:           req.Name,
		Department:     req.Department,
		AssignedDoctor: directory.DoctorForDepartment(req.Department),
		PainLevel:      req.PainLevel,
		StepsWalked:    req.StepsWalked,
		MedicineTaken:  req.MedicineTaken,
		SleepHours:     req.SleepHours,
		Mood:           req.Mood,
		Notes:          req.Notes,

		RiskScore:        assessment.RiskScore,
		RiskLevel:        string(assessment.RiskLevel),
		AIRecommendation: assessment.Recommendation,
		EvaluatedOn:      assessment.EvaluatedAt,

		SubmittedAt: submittedAt,
	}

	if err := s.db.CreateReport(ctx, r); err != nil {
		return nil, fmt.Errorf("persist report: %w", err)
	}

	if assessment.RiskLevel == risk.LevelHigh {
		s.alertAssignedDoctor(ctx, r)
	}

	return r, nil
}

// ---------------------------------------------------------------------------
// LatestSummary
// ---------------------------------------------------------------------------

func (s *reportService) LatestSummary(ctx context.Context, name string) (*Summary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	reports, err := s.db.ReportsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	if len(reports) == 0 {
		return nil, ErrNoReports
	}

	latest := reports[0]

	// The stored score is a write-time snapshot; the one shown to the
	// patient is always recomputed from the raw signals.
	assessment := risk.Score(risk.Input{
		Steps:         latest.StepsWalked,
		PainLevel:     latest.PainLevel,
		MedicineTaken: latest.MedicineTaken,
		SleepHours:    latest.SleepHours,
		Mood:          latest.Mood,
	})

	return &Summary{Report: latest, Assessment: assessment}, nil
}

// ---------------------------------------------------------------------------
// LatestPrescription
// ---------------------------------------------------------------------------

func (s *reportService) LatestPrescription(ctx context.Context, name string) (*Prescription, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	reports, err := s.db.ReportsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}

	for _, r := range reports {
		if strings.TrimSpace(r.DoctorNotes) != "" {
			return &Prescription{
				DoctorNotes: r.DoctorNotes,
				Doctor:      directory.Normalize(r.AssignedDoctor),
				WrittenOn:   r.SubmittedAt,
			}, nil
		}
	}

	return nil, ErrNoPrescription
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// alertAssignedDoctor emails the assigned doctor about a high-risk report.
// Failures are logged, never surfaced: the report is already persisted.
func (s *reportService) alertAssignedDoctor(ctx context.Context, r *store.PatientReport) {
	if s.mail == nil || !s.mail.Enabled() {
		return
	}
	if r.AssignedDoctor == directory.Unassigned {
		return
	}

	d, err := s.db.DoctorByName(ctx, r.AssignedDoctor)
	if err != nil || d.Email == "" {
		s.log.Debug("high-risk alert skipped, no doctor email", "doctor", r.AssignedDoctor)
		return
	}

	msg := email.BuildHighRiskAlert(email.HighRiskAlertData{
		DoctorName:     d.Name,
		DoctorEmail:    d.Email,
		PatientName:    r.Name,
		Department:     r.Department,
		RiskScore:      r.RiskScore,
		RiskLevel:      r.RiskLevel,
		Recommendation: r.AIRecommendation,
		SubmittedAt:    r.SubmittedAt,
	})

	if err := s.mail.Send(ctx, msg); err != nil {
		s.log.Warn("failed to send high-risk alert", "doctor", d.Name, "patient", r.Name, "error", err)
	}
}

// docID derives the record id from the patient name and submission time, so
// each submission creates a distinct record while staying greppable by name.
func docID(name string, at time.Time) string {
	slug := reSlug.ReplaceAllString(strings.ToLower(name), "_")
	slug = strings.Trim(slug, "_")
	return fmt.Sprintf("%s_%d", slug, at.UnixNano())
}
