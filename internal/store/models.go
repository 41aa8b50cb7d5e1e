package store

import (
	"time"

	"github.com/google/uuid"
)

// PatientReport is one patient-submitted daily data point plus the derived
// risk fields and any doctor-added note. The ID is derived from the patient
// name and submission time, so a resubmission always creates a new record.
type PatientReport struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"index;not null" json:"name"`
	Department     string    `json:"department"`
	AssignedDoctor string    `gorm:"index" json:"assigned_doctor"`
	PainLevel      int       `json:"pain_level"`
	StepsWalked    int       `json:"steps_walked"`
	MedicineTaken  bool      `json:"medicine_taken"`
	SleepHours     *float64  `json:"sleep_hours,omitempty"`
	Mood           string    `json:"mood"`
	Notes          string    `json:"notes"`
	DoctorNotes    string    `json:"doctor_notes"`

	// Write-time risk snapshot. Kept for audit/export; reads always
	// recompute from the raw signals.
	RiskScore        float64   `json:"risk_score"`
	RiskLevel        string    `json:"risk_level"`
	AIRecommendation string    `json:"ai_recommendation"`
	EvaluatedOn      time.Time `json:"evaluated_on"`

	SubmittedAt time.Time `gorm:"index" json:"timestamp"`
}

// Doctor is one entry of the doctor directory. Credentials are stored as
// Argon2id hashes, never in the clear.
type Doctor struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string     `gorm:"uniqueIndex;not null" json:"name"`
	Department          string     `json:"department"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
}
