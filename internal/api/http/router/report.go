package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/api/http/handler"
)

func (r *Router) registerReportRoutes(api fiber.Router, h *handler.ReportHandler) {
	group := api.Group("/reports")
	group.Post("/", h.Submit)
	group.Get("/summary", h.Summary)
	group.Get("/prescription", h.Prescription)
}
