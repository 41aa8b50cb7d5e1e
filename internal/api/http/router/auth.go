package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	group := api.Group("/auth")
	group.Get("/doctors", h.Doctors)
	group.Post("/login", h.Login)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
}
