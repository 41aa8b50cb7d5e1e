package email

import (
	"fmt"
	"time"
)

// HighRiskAlertData carries the report fields surfaced in a high-risk alert
// sent to the assigned doctor.
type HighRiskAlertData struct {
	DoctorName     string
	DoctorEmail    string
	PatientName    string
	Department     string
	RiskScore      float64
	RiskLevel      string
	Recommendation string
	SubmittedAt    time.Time
}

// BuildHighRiskAlert creates the alert message for a report that scored in
// the high-risk band.
func BuildHighRiskAlert(data HighRiskAlertData) Message {
	doctor := data.DoctorName
	if doctor == "" {
		doctor = "Doctor"
	}

	subject := fmt.Sprintf("High-risk recovery report: %s (score %.2f)", data.PatientName, data.RiskScore)

	textBody := fmt.Sprintf(`Hi %s,

A recovery report submitted by %s was scored %s risk (%.2f/100).

Department: %s
Submitted:  %s
Guidance:   %s

Please review the patient on your dashboard.
`,
		doctor,
		data.PatientName,
		data.RiskLevel,
		data.RiskScore,
		data.Department,
		data.SubmittedAt.Format(time.RFC1123),
		data.Recommendation,
	)

	return Message{
		To:       []string{data.DoctorEmail},
		Subject:  subject,
		TextBody: textBody,
	}
}
