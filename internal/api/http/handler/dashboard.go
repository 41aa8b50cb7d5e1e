package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/dashboard"
	pasetotoken "github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/paseto"
)

type DashboardHandler struct {
	svc dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GET /api/v1/dashboard/patients
func (h *DashboardHandler) Patients(c fiber.Ctx) error {
	claims, okClaims := pasetotoken.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c)
	}

	rows, err := h.svc.ListForDoctorID(c.Context(), claims.DoctorID)
	if err != nil {
		return mapDashboardError(c, err)
	}

	return ok(c, rows)
}

// PATCH /api/v1/dashboard/reports/:id/notes
func (h *DashboardHandler) SaveNotes(c fiber.Ctx) error {
	var body struct {
		DoctorNotes string `json:"doctor_notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SaveDoctorNotes(c.Context(), c.Params("id"), body.DoctorNotes); err != nil {
		return mapDashboardError(c, err)
	}

	return noContent(c)
}

func mapDashboardError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, dashboard.ErrDoctorRequired):
		return unauthorized(c)
	case errors.Is(err, dashboard.ErrReportNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}
