package dashboard

import "errors"

var (
	ErrDoctorRequired = errors.New("doctor name is required")
	ErrReportNotFound = errors.New("report not found")
)
