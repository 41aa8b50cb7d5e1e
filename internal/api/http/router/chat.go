package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/api/http/handler"
)

func (r *Router) registerChatRoutes(api fiber.Router, h *handler.ChatHandler) {
	group := api.Group("/chat")
	group.Post("/messages", h.Send)
	group.Get("/history", h.History)
	group.Delete("/history", h.Reset)
}
