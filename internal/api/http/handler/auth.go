package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/auth"
	pasetotoken "github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// GET /api/v1/auth/doctors
func (h *AuthHandler) Doctors(c fiber.Ctx) error {
	doctors, err := h.svc.ListDoctors(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, doctors)
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Name:     body.Name,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, okClaims := pasetotoken.ClaimsFromFiber(c)
	if !okClaims || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return internalError(c)
	}

	return noContent(c)
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return unauthorized(c)
	case errors.Is(err, auth.ErrAccountLocked):
		return c.Status(fiber.StatusLocked).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrSessionNotFound):
		return unauthorized(c)
	default:
		return internalError(c)
	}
}
