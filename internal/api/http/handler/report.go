package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/report"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// POST /api/v1/reports
func (h *ReportHandler) Submit(c fiber.Ctx) error {
	var body struct {
		Name          string   `json:"name"`
		Department    string   `json:"department"`
		PainLevel     int      `json:"pain_level"`
		StepsWalked   int      `json:"steps_walked"`
		MedicineTaken bool     `json:"medicine_taken"`
		SleepHours    *float64 `json:"sleep_hours"`
		Mood          string   `json:"mood"`
		Notes         string   `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Submit(c.Context(), report.SubmitRequest{
		Name:          body.Name,
		Department:    body.Department,
		PainLevel:     body.PainLevel,
		StepsWalked:   body.StepsWalked,
		MedicineTaken: body.MedicineTaken,
		SleepHours:    body.SleepHours,
		Mood:          body.Mood,
		Notes:         body.Notes,
	})
	if err != nil {
		return mapReportError(c, err)
	}

	return created(c, r)
}

// GET /api/v1/reports/summary?name=
func (h *ReportHandler) Summary(c fiber.Ctx) error {
	name := c.Query("name")

	summary, err := h.svc.LatestSummary(c.Context(), name)
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, summary)
}

// GET /api/v1/reports/prescription?name=
func (h *ReportHandler) Prescription(c fiber.Ctx) error {
	name := c.Query("name")

	p, err := h.svc.LatestPrescription(c.Context(), name)
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, p)
}

func mapReportError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, report.ErrNameRequired),
		errors.Is(err, report.ErrPainOutOfRange),
		errors.Is(err, report.ErrNegativeSteps),
		errors.Is(err, report.ErrNegativeSleep):
		return badRequest(c, err.Error())
	case errors.Is(err, report.ErrNoReports), errors.Is(err, report.ErrNoPrescription):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}
