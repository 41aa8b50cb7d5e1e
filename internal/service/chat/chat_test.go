package chat

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/gemini"
)

type fakeHistory struct {
	turns map[string][]Turn
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{turns: map[string][]Turn{}}
}

func (f *fakeHistory) Append(_ context.Context, sessionID string, t Turn) error {
	f.turns[sessionID] = append(f.turns[sessionID], t)
	return nil
}

func (f *fakeHistory) Turns(_ context.Context, sessionID string) ([]Turn, error) {
	return f.turns[sessionID], nil
}

func (f *fakeHistory) PopLast(_ context.Context, sessionID string) error {
	ts := f.turns[sessionID]
	if len(ts) > 0 {
		f.turns[sessionID] = ts[:len(ts)-1]
	}
	return nil
}

func (f *fakeHistory) Clear(_ context.Context, sessionID string) error {
	delete(f.turns, sessionID)
	return nil
}

type fakeCompleter struct {
	enabled bool
	reply   string
	err     error
	got     []gemini.Turn
	system  string
}

func (f *fakeCompleter) IsEnabled() bool { return f.enabled }

func (f *fakeCompleter) Complete(_ context.Context, system string, turns []gemini.Turn) (string, error) {
	f.system = system
	f.got = turns
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newService(h HistoryStore, c Completer) *chatService {
	return &chatService{
		history: h,
		model:   c,
		log:     slog.Default(),
		now:     func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestSendAppendsBothTurns(t *testing.T) {
	h := newFakeHistory()
	c := &fakeCompleter{enabled: true, reply: "Rest and hydrate."}
	s := newService(h, c)

	reply, err := s.Send(context.Background(), "sess-1", "I feel dizzy")
	require.NoError(t, err)

	assert.Equal(t, "model", reply.Role)
	assert.Equal(t, "Rest and hydrate.", reply.Text)

	turns := h.turns["sess-1"]
	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "I feel dizzy", turns[0].Text)
	assert.Equal(t, "model", turns[1].Role)

	// The completion sees the user turn and the framing instruction.
	require.Len(t, c.got, 1)
	assert.NotEmpty(t, c.system)
}

func TestSendFailureDropsUserTurn(t *testing.T) {
	h := newFakeHistory()
	h.turns["sess-1"] = []Turn{
		{Role: "user", Text: "earlier question"},
		{Role: "model", Text: "earlier answer"},
	}
	c := &fakeCompleter{enabled: true, err: errors.New("upstream 500")}
	s := newService(h, c)

	_, err := s.Send(context.Background(), "sess-1", "new question")
	assert.ErrorIs(t, err, ErrAssistant)

	// Only the pre-existing turns survive; the unanswered one is gone.
	turns := h.turns["sess-1"]
	require.Len(t, turns, 2)
	assert.Equal(t, "earlier answer", turns[1].Text)
}

func TestSendDisabled(t *testing.T) {
	s := newService(newFakeHistory(), &fakeCompleter{enabled: false})

	_, err := s.Send(context.Background(), "sess-1", "hello")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestSendValidation(t *testing.T) {
	s := newService(newFakeHistory(), &fakeCompleter{enabled: true})

	_, err := s.Send(context.Background(), "", "hello")
	assert.ErrorIs(t, err, ErrSessionRequired)

	_, err = s.Send(context.Background(), "sess-1", "   ")
	assert.ErrorIs(t, err, ErrMessageRequired)
}

func TestHistoryAndReset(t *testing.T) {
	h := newFakeHistory()
	h.turns["sess-1"] = []Turn{{Role: "user", Text: "q"}}
	s := newService(h, &fakeCompleter{enabled: true})

	turns, err := s.History(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, turns, 1)

	require.NoError(t, s.Reset(context.Background(), "sess-1"))

	turns, err = s.History(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, turns)
}
