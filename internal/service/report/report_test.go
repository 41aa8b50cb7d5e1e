package report

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/store"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/email"
)

type fakeStore struct {
	created []store.PatientReport
	byName  map[string][]store.PatientReport
	doctors map[string]store.Doctor
}

func (f *fakeStore) CreateReport(_ context.Context, r *store.PatientReport) error {
	f.created = append(f.created, *r)
	return nil
}

func (f *fakeStore) ReportsByName(_ context.Context, name string) ([]store.PatientReport, error) {
	return f.byName[name], nil
}

func (f *fakeStore) DoctorByName(_ context.Context, name string) (*store.Doctor, error) {
	d, ok := f.doctors[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &d, nil
}

type fakeMailer struct {
	enabled bool
	sent    []email.Message
	err     error
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) Send(_ context.Context, m email.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func newService(db *fakeStore, mail *fakeMailer) *reportService {
	return &reportService{
		db:   db,
		mail: mail,
		log:  slog.Default(),
		now:  func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func sleep(h float64) *float64 { return &h }

func TestSubmitValidation(t *testing.T) {
	s := newService(&fakeStore{}, &fakeMailer{})

	tests := []struct {
		name    string
		req     SubmitRequest
		wantErr error
	}{
		{"empty name", SubmitRequest{Name: "  ", PainLevel: 5}, ErrNameRequired},
		{"pain too high", SubmitRequest{Name: "Jane", PainLevel: 11}, ErrPainOutOfRange},
		{"pain negative", SubmitRequest{Name: "Jane", PainLevel: -1}, ErrPainOutOfRange},
		{"negative steps", SubmitRequest{Name: "Jane", PainLevel: 5, StepsWalked: -100}, ErrNegativeSteps},
		{"negative sleep", SubmitRequest{Name: "Jane", PainLevel: 5, SleepHours: sleep(-1)}, ErrNegativeSleep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Submit(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitPersistsScoredReport(t *testing.T) {
	db := &fakeStore{}
	s := newService(db, &fakeMailer{})

	got, err := s.Submit(context.Background(), SubmitRequest{
		Name:          "Jane Doe",
		Department:    "Orthopedics",
		PainLevel:     8,
		StepsWalked:   1200,
		MedicineTaken: false,
		SleepHours:    sleep(4),
		Mood:          "tired",
		Notes:         "sharp pain when standing",
	})
	require.NoError(t, err)
	require.Len(t, db.created, 1)

	assert.Equal(t, "jane_doe_1748779200000000000", got.ID)
	assert.Equal(t, "Dr. Evelyn Reed", got.AssignedDoctor)
	assert.Equal(t, "Moderate", got.RiskLevel)
	assert.InDelta(t, 63.75, got.RiskScore, 0.001)
	assert.Equal(t, db.created[0].ID, got.ID)
}

func TestSubmitUnknownDepartmentUnassigned(t *testing.T) {
	db := &fakeStore{}
	s := newService(db, &fakeMailer{})

	got, err := s.Submit(context.Background(), SubmitRequest{
		Name:       "Bob",
		Department: "Astrology",
		PainLevel:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Unassigned", got.AssignedDoctor)
}

func TestSubmitHighRiskSendsAlert(t *testing.T) {
	db := &fakeStore{
		doctors: map[string]store.Doctor{
			"Dr. Evelyn Reed": {Name: "Dr. Evelyn Reed", Email: "evelyn@clinic.example"},
		},
	}
	mail := &fakeMailer{enabled: true}
	s := newService(db, mail)

	_, err := s.Submit(context.Background(), SubmitRequest{
		Name:        "Jane Doe",
		Department:  "Orthopedics",
		PainLevel:   10,
		StepsWalked: 0,
		SleepHours:  sleep(4),
		Mood:        "sad",
	})
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, []string{"evelyn@clinic.example"}, mail.sent[0].To)
	assert.Contains(t, mail.sent[0].Subject, "Jane Doe")
}

func TestSubmitLowRiskNoAlert(t *testing.T) {
	mail := &fakeMailer{enabled: true}
	s := newService(&fakeStore{}, mail)

	_, err := s.Submit(context.Background(), SubmitRequest{
		Name:          "Jane Doe",
		Department:    "Orthopedics",
		PainLevel:     1,
		StepsWalked:   12000,
		MedicineTaken: true,
		SleepHours:    sleep(8),
		Mood:          "relaxed",
	})
	require.NoError(t, err)
	assert.Empty(t, mail.sent)
}

func TestSubmitAlertFailureDoesNotFailSubmission(t *testing.T) {
	db := &fakeStore{
		doctors: map[string]store.Doctor{
			"Dr. Evelyn Reed": {Name: "Dr. Evelyn Reed", Email: "evelyn@clinic.example"},
		},
	}
	mail := &fakeMailer{enabled: true, err: assert.AnError}
	s := newService(db, mail)

	_, err := s.Submit(context.Background(), SubmitRequest{
		Name:       "Jane Doe",
		Department: "Orthopedics",
		PainLevel:  10,
		SleepHours: sleep(3),
		Mood:       "stressed",
	})
	assert.NoError(t, err)
}

func TestLatestSummaryRecomputesRisk(t *testing.T) {
	db := &fakeStore{
		byName: map[string][]store.PatientReport{
			"Jane Doe": {
				{
					ID:          "jane_doe_2",
					Name:        "Jane Doe",
					PainLevel:   6,
					StepsWalked: 2500,
					SleepHours:  sleep(6),
					Mood:        "neutral",
					// Stale write-time snapshot; must not be echoed back.
					RiskScore:   1.23,
					RiskLevel:   "Low",
					SubmittedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				},
				{
					ID:          "jane_doe_1",
					Name:        "Jane Doe",
					PainLevel:   2,
					SubmittedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
				},
			},
		},
	}
	s := newService(db, &fakeMailer{})

	got, err := s.LatestSummary(context.Background(), "Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, "jane_doe_2", got.Report.ID)
	assert.InDelta(t, 43.85, got.Assessment.RiskScore, 0.001)
	assert.Equal(t, "Moderate", string(got.Assessment.RiskLevel))
}

func TestLatestSummaryNoReports(t *testing.T) {
	s := newService(&fakeStore{}, &fakeMailer{})

	_, err := s.LatestSummary(context.Background(), "Nobody")
	assert.ErrorIs(t, err, ErrNoReports)
}

func TestLatestPrescription(t *testing.T) {
	db := &fakeStore{
		byName: map[string][]store.PatientReport{
			"Jane Doe": {
				{ID: "r3", DoctorNotes: "", SubmittedAt: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},
				{ID: "r2", DoctorNotes: "Reduce ibuprofen to 200mg", AssignedDoctor: "doctor_01",
					SubmittedAt: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
				{ID: "r1", DoctorNotes: "Initial assessment", SubmittedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
	s := newService(db, &fakeMailer{})

	got, err := s.LatestPrescription(context.Background(), "Jane Doe")
	require.NoError(t, err)

	// Newest report with non-empty notes wins; the alias resolves to a
	// display name.
	assert.Equal(t, "Reduce ibuprofen to 200mg", got.DoctorNotes)
	assert.Equal(t, "Dr. Evelyn Reed", got.Doctor)
}

func TestLatestPrescriptionNone(t *testing.T) {
	db := &fakeStore{
		byName: map[string][]store.PatientReport{
			"Jane Doe": {{ID: "r1", DoctorNotes: "   "}},
		},
	}
	s := newService(db, &fakeMailer{})

	_, err := s.LatestPrescription(context.Background(), "Jane Doe")
	assert.ErrorIs(t, err, ErrNoPrescription)
}
