package report

import "errors"

var (
	ErrNameRequired   = errors.New("patient name is required")
	ErrPainOutOfRange = errors.New("pain level must be between 0 and 10")
	ErrNegativeSteps  = errors.New("steps walked cannot be negative")
	ErrNegativeSleep  = errors.New("sleep hours cannot be negative")
	ErrNoReports      = errors.New("no reports found for patient")
	ErrNoPrescription = errors.New("no prescription found for patient")
)
