package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/directory"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/risk"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// RankedReport is one dashboard row: the stored report with its risk fields
// recomputed at read time.
type RankedReport struct {
	store.PatientReport
	Assessment risk.Assessment `json:"assessment"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// ListForDoctor returns the doctor's patient reports ranked by
	// recomputed risk, highest first.
	ListForDoctor(ctx context.Context, doctorName string) ([]RankedReport, error)
	// ListForDoctorID is ListForDoctor keyed by the authenticated token's
	// doctor id.
	ListForDoctorID(ctx context.Context, doctorID uuid.UUID) ([]RankedReport, error)
	// SaveDoctorNotes writes the doctor's notes onto a single report.
	SaveDoctorNotes(ctx context.Context, reportID, notes string) error
}

// DashboardStore is the subset of store operations the service needs.
type DashboardStore interface {
	ListReports(ctx context.Context) ([]store.PatientReport, error)
	UpdateReport(ctx context.Context, id string, fields map[string]any) error
	DoctorByID(ctx context.Context, id uuid.UUID) (*store.Doctor, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type dashboardService struct {
	db DashboardStore
}

func New(db DashboardStore) Service {
	return &dashboardService{db: db}
}

func (s *dashboardService) ListForDoctor(ctx context.Context, doctorName string) ([]RankedReport, error) {
	doctorName = strings.TrimSpace(doctorName)
	if doctorName == "" {
		return nil, ErrDoctorRequired
	}

	reports, err := s.db.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	out := make([]RankedReport, 0, len(reports))
	for _, r := range reports {
		// Old records may carry legacy doctor identifiers.
		if directory.Normalize(r.AssignedDoctor) != doctorName {
			continue
		}

		assessment := risk.Score(risk.Input{
			Steps:         r.StepsWalked,
			PainLevel:     r.PainLevel,
			MedicineTaken: r.MedicineTaken,
			SleepHours:    r.SleepHours,
			Mood:          r.Mood,
		})

		out = append(out, RankedReport{PatientReport: r, Assessment: assessment})
	}

	// Highest risk first; equal scores rank the older submission first so
	// the longest-waiting patient surfaces on top.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Assessment.RiskScore != out[j].Assessment.RiskScore {
			return out[i].Assessment.RiskScore > out[j].Assessment.RiskScore
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})

	return out, nil
}

func (s *dashboardService) ListForDoctorID(ctx context.Context, doctorID uuid.UUID) ([]RankedReport, error) {
	d, err := s.db.DoctorByID(ctx, doctorID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrDoctorRequired
	}
	if err != nil {
		return nil, fmt.Errorf("resolve doctor: %w", err)
	}
	return s.ListForDoctor(ctx, d.Name)
}

func (s *dashboardService) SaveDoctorNotes(ctx context.Context, reportID, notes string) error {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return ErrReportNotFound
	}

	err := s.db.UpdateReport(ctx, reportID, map[string]any{
		"doctor_notes": notes,
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrReportNotFound
	}
	if err != nil {
		return fmt.Errorf("save doctor notes: %w", err)
	}
	return nil
}
