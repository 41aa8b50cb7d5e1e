package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/service/chat"
)

const HeaderSessionID = "X-Session-Id"

type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// sessionID reads the chat session header, generating a fresh one when the
// client has none yet. Either way it is echoed back.
func sessionID(c fiber.Ctx) string {
	sid := c.Get(HeaderSessionID)
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Set(HeaderSessionID, sid)
	return sid
}

// POST /api/v1/chat/messages
func (h *ChatHandler) Send(c fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	reply, err := h.svc.Send(c.Context(), sessionID(c), body.Message)
	if err != nil {
		return mapChatError(c, err)
	}

	return ok(c, reply)
}

// GET /api/v1/chat/history
func (h *ChatHandler) History(c fiber.Ctx) error {
	turns, err := h.svc.History(c.Context(), sessionID(c))
	if err != nil {
		return mapChatError(c, err)
	}

	if turns == nil {
		turns = []chat.Turn{}
	}
	return ok(c, turns)
}

// DELETE /api/v1/chat/history
func (h *ChatHandler) Reset(c fiber.Ctx) error {
	if err := h.svc.Reset(c.Context(), sessionID(c)); err != nil {
		return mapChatError(c, err)
	}
	return noContent(c)
}

func mapChatError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, chat.ErrMessageRequired), errors.Is(err, chat.ErrSessionRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, chat.ErrDisabled):
		return serviceUnavailable(c, "assistant is not configured")
	case errors.Is(err, chat.ErrAssistant):
		return badGateway(c, "assistant failed to answer, please retry")
	default:
		return internalError(c)
	}
}
