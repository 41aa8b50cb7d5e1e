package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/gemini"
)

// systemInstruction frames the assistant for post-operative recovery support.
// It is sent with every completion, never stored in the history.
const systemInstruction = `You are a friendly post-operative recovery assistant for a clinic's patient portal.
Answer questions about general recovery, medication adherence, sleep, nutrition and light exercise.
Keep answers short and practical. You are not a doctor: for anything urgent, worsening or
medication-specific, tell the patient to contact their assigned doctor. Never diagnose.`

// Turn is one stored exchange half, role "user" or "model".
type Turn struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Send appends the user message, asks the assistant, and appends the
	// reply. On assistant failure the user message is dropped again so a
	// retry resubmits cleanly.
	Send(ctx context.Context, sessionID, message string) (*Turn, error)
	History(ctx context.Context, sessionID string) ([]Turn, error)
	Reset(ctx context.Context, sessionID string) error
}

// HistoryStore keeps the per-session conversation, bounded and ordered.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, t Turn) error
	Turns(ctx context.Context, sessionID string) ([]Turn, error)
	PopLast(ctx context.Context, sessionID string) error
	Clear(ctx context.Context, sessionID string) error
}

// Completer answers a conversation. Satisfied by *gemini.Client.
type Completer interface {
	IsEnabled() bool
	Complete(ctx context.Context, system string, turns []gemini.Turn) (string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type chatService struct {
	history HistoryStore
	model   Completer
	log     *slog.Logger

	now func() time.Time
}

func New(history HistoryStore, model Completer, log *slog.Logger) Service {
	return &chatService{
		history: history,
		model:   model,
		log:     log,
		now:     time.Now,
	}
}

func (s *chatService) Send(ctx context.Context, sessionID, message string) (*Turn, error) {
	sessionID = strings.TrimSpace(sessionID)
	message = strings.TrimSpace(message)

	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	if message == "" {
		return nil, ErrMessageRequired
	}
	if !s.model.IsEnabled() {
		return nil, ErrDisabled
	}

	userTurn := Turn{Role: "user", Text: message, At: s.now().UTC()}
	if err := s.history.Append(ctx, sessionID, userTurn); err != nil {
		return nil, fmt.Errorf("append user turn: %w", err)
	}

	turns, err := s.history.Turns(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	prompt := make([]gemini.Turn, 0, len(turns))
	for _, t := range turns {
		prompt = append(prompt, gemini.Turn{Role: t.Role, Text: t.Text})
	}

	replyText, err := s.model.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		// Drop the unanswered user turn so a retry resubmits cleanly.
		if popErr := s.history.PopLast(ctx, sessionID); popErr != nil {
			s.log.Warn("failed to pop unanswered turn", "session", sessionID, "error", popErr)
		}
		s.log.Warn("assistant completion failed", "session", sessionID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAssistant, err)
	}

	reply := Turn{Role: "model", Text: replyText, At: s.now().UTC()}
	if err := s.history.Append(ctx, sessionID, reply); err != nil {
		return nil, fmt.Errorf("append reply: %w", err)
	}

	return &reply, nil
}

func (s *chatService) History(ctx context.Context, sessionID string) ([]Turn, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	return s.history.Turns(ctx, sessionID)
}

func (s *chatService) Reset(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrSessionRequired
	}
	return s.history.Clear(ctx, sessionID)
}
