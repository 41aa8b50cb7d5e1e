package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/api/http/handler"
)

func (r *Router) registerDashboardRoutes(api fiber.Router, h *handler.DashboardHandler, authRequired fiber.Handler) {
	group := api.Group("/dashboard", authRequired)
	group.Get("/patients", h.Patients)
	group.Patch("/reports/:id/notes", h.SaveNotes)
}
