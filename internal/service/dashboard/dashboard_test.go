package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/store"
)

type fakeStore struct {
	reports []store.PatientReport
	doctors map[uuid.UUID]store.Doctor
	updated map[string]map[string]any
}

func (f *fakeStore) DoctorByID(_ context.Context, id uuid.UUID) (*store.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &d, nil
}

func (f *fakeStore) ListReports(_ context.Context) ([]store.PatientReport, error) {
	return f.reports, nil
}

func (f *fakeStore) UpdateReport(_ context.Context, id string, fields map[string]any) error {
	for _, r := range f.reports {
		if r.ID == id {
			if f.updated == nil {
				f.updated = map[string]map[string]any{}
			}
			f.updated[id] = fields
			return nil
		}
	}
	return store.ErrNotFound
}

func sleep(h float64) *float64 { return &h }

func TestListForDoctorFiltersAndRanks(t *testing.T) {
	db := &fakeStore{
		reports: []store.PatientReport{
			// Low risk, assigned via legacy alias.
			{ID: "calm", Name: "Calm Patient", AssignedDoctor: "doctor_01",
				PainLevel: 1, StepsWalked: 12000, MedicineTaken: true, SleepHours: sleep(8), Mood: "relaxed",
				SubmittedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)},
			// High risk, direct name.
			{ID: "acute", Name: "Acute Patient", AssignedDoctor: "Dr. Evelyn Reed",
				PainLevel: 10, StepsWalked: 0, SleepHours: sleep(4), Mood: "sad",
				SubmittedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
			// Someone else's patient.
			{ID: "other", Name: "Other Patient", AssignedDoctor: "Dr. Marcus Chen",
				PainLevel:   10,
				SubmittedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		},
	}
	s := New(db)

	got, err := s.ListForDoctor(context.Background(), "Dr. Evelyn Reed")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "acute", got[0].ID)
	assert.Equal(t, "High", string(got[0].Assessment.RiskLevel))
	assert.InDelta(t, 81.62, got[0].Assessment.RiskScore, 0.001)

	assert.Equal(t, "calm", got[1].ID)
	assert.Equal(t, "Low", string(got[1].Assessment.RiskLevel))
}

func TestListForDoctorTieBreaksOnSubmissionTime(t *testing.T) {
	// Identical signals give identical scores; the older report ranks first.
	mk := func(id string, at time.Time) store.PatientReport {
		return store.PatientReport{
			ID: id, AssignedDoctor: "Dr. Evelyn Reed",
			PainLevel: 7, StepsWalked: 500, SleepHours: sleep(4), Mood: "stressed",
			SubmittedAt: at,
		}
	}
	db := &fakeStore{
		reports: []store.PatientReport{
			mk("newer", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
			mk("older", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
	}
	s := New(db)

	got, err := s.ListForDoctor(context.Background(), "Dr. Evelyn Reed")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, got[0].Assessment.RiskScore, got[1].Assessment.RiskScore)
	assert.Equal(t, "older", got[0].ID)
	assert.Equal(t, "newer", got[1].ID)
}

func TestListForDoctorRecomputesStaleScores(t *testing.T) {
	db := &fakeStore{
		reports: []store.PatientReport{
			{ID: "stale", AssignedDoctor: "Dr. Evelyn Reed",
				PainLevel: 10, StepsWalked: 0, SleepHours: sleep(4), Mood: "sad",
				RiskScore: 5.0, RiskLevel: "Low"},
		},
	}
	s := New(db)

	got, err := s.ListForDoctor(context.Background(), "Dr. Evelyn Reed")
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.InDelta(t, 81.62, got[0].Assessment.RiskScore, 0.001)
	assert.Equal(t, "High", string(got[0].Assessment.RiskLevel))
}

func TestListForDoctorEmptyName(t *testing.T) {
	s := New(&fakeStore{})

	_, err := s.ListForDoctor(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrDoctorRequired)
}

func TestListForDoctorNoPatients(t *testing.T) {
	s := New(&fakeStore{})

	got, err := s.ListForDoctor(context.Background(), "Dr. Evelyn Reed")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListForDoctorID(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	db := &fakeStore{
		doctors: map[uuid.UUID]store.Doctor{
			id: {ID: id, Name: "Dr. Evelyn Reed"},
		},
		reports: []store.PatientReport{
			{ID: "r1", AssignedDoctor: "Dr. Evelyn Reed", PainLevel: 3},
		},
	}
	s := New(db)

	got, err := s.ListForDoctorID(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)

	_, err = s.ListForDoctorID(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, ErrDoctorRequired)
}

func TestSaveDoctorNotes(t *testing.T) {
	db := &fakeStore{
		reports: []store.PatientReport{{ID: "r1", AssignedDoctor: "Dr. Evelyn Reed"}},
	}
	s := New(db)

	err := s.SaveDoctorNotes(context.Background(), "r1", "Reduce dosage")
	require.NoError(t, err)
	assert.Equal(t, "Reduce dosage", db.updated["r1"]["doctor_notes"])
}

func TestSaveDoctorNotesUnknownReport(t *testing.T) {
	s := New(&fakeStore{})

	err := s.SaveDoctorNotes(context.Background(), "missing", "notes")
	assert.ErrorIs(t, err, ErrReportNotFound)
}
