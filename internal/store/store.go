// Package store persists patient reports and the doctor directory. It exposes
// the four document-store operations the rest of the system is written
// against: create, list, query-by-field and partial update. No transactional
// guarantee beyond last-write-wins per record is offered or assumed.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the backing tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&PatientReport{}, &Doctor{})
}

// ---------------------------------------------------------------------------
// Patient reports
// ---------------------------------------------------------------------------

func (s *Store) CreateReport(ctx context.Context, r *PatientReport) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (s *Store) ListReports(ctx context.Context) ([]PatientReport, error) {
	var out []PatientReport
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return out, nil
}

// ReportsByName returns every report submitted under a patient name, newest
// first.
func (s *Store) ReportsByName(ctx context.Context, name string) ([]PatientReport, error) {
	var out []PatientReport
	err := s.db.WithContext(ctx).
		Where("name = ?", name).
		Order("submitted_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query reports by name: %w", err)
	}
	return out, nil
}

func (s *Store) GetReport(ctx context.Context, id string) (*PatientReport, error) {
	var r PatientReport
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &r, nil
}

// UpdateReport applies a partial update to a single report. Unknown ids are
// an error so callers can surface "not found" instead of silently writing
// nothing.
func (s *Store) UpdateReport(ctx context.Context, id string, fields map[string]any) error {
	res := s.db.WithContext(ctx).
		Model(&PatientReport{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update report: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Doctor directory
// ---------------------------------------------------------------------------

func (s *Store) ListDoctors(ctx context.Context) ([]Doctor, error) {
	var out []Doctor
	if err := s.db.WithContext(ctx).Order("name").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return out, nil
}

// DoctorByID resolves the doctor behind an authenticated token.
func (s *Store) DoctorByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	var d Doctor
	err := s.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return &d, nil
}

func (s *Store) DoctorByName(ctx context.Context, name string) (*Doctor, error) {
	var d Doctor
	err := s.db.WithContext(ctx).First(&d, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return &d, nil
}

// SaveDoctor inserts a doctor or updates the existing record with the same
// name. Used by directory seeding.
func (s *Store) SaveDoctor(ctx context.Context, d *Doctor) error {
	existing, err := s.DoctorByName(ctx, d.Name)
	if errors.Is(err, ErrNotFound) {
		if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
			return fmt.Errorf("create doctor: %w", err)
		}
		return nil
	}
	if err != nil {
		return err
	}

	d.ID = existing.ID
	d.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(d).Error; err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	return nil
}

// UpdateDoctor applies a partial update to a doctor record.
func (s *Store) UpdateDoctor(ctx context.Context, name string, fields map[string]any) error {
	res := s.db.WithContext(ctx).
		Model(&Doctor{}).
		Where("name = ?", name).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update doctor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
