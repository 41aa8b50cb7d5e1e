package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	client := NewFromConfig(config.AssistantConfig{})
	if client.IsEnabled() {
		t.Error("expected client to be disabled without an API key")
	}

	_, err := client.Complete(context.Background(), "", []Turn{{Role: "user", Text: "hi"}})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Complete() error = %v, want ErrDisabled", err)
	}
}

func TestComplete(t *testing.T) {
	var gotReq GenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		resp := `{"candidates":[{"content":{"parts":[{"text":"Drink plenty of water."}]}}]}`
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(resp))
	}))
	defer srv.Close()

	client := New(Config{
		APIKey:   "test-key",
		Model:    "gemini-2.0-flash",
		Endpoint: srv.URL,
	})

	reply, err := client.Complete(context.Background(), "You are a recovery assistant.", []Turn{
		{Role: "user", Text: "I feel dizzy"},
		{Role: "model", Text: "Since when?"},
		{Role: "user", Text: "This morning"},
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "Drink plenty of water." {
		t.Errorf("Complete() = %q", reply)
	}

	if gotReq.SystemInstruction == nil || gotReq.SystemInstruction.Parts[0].Text != "You are a recovery assistant." {
		t.Error("system instruction not forwarded")
	}
	if len(gotReq.Contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(gotReq.Contents))
	}
	if gotReq.Contents[1].Role != "model" {
		t.Errorf("second turn role = %q, want model", gotReq.Contents[1].Role)
	}
}

func TestComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"invalid model","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "k", Model: "nope", Endpoint: srv.URL})

	_, err := client.Complete(context.Background(), "", []Turn{{Role: "user", Text: "hi"}})
	if err == nil {
		t.Fatal("expected error from API error response")
	}
}

func TestComplete_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := New(Config{APIKey: "k", Model: "m", Endpoint: srv.URL})

	_, err := client.Complete(context.Background(), "", []Turn{{Role: "user", Text: "hi"}})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("Complete() error = %v, want ErrEmptyResponse", err)
	}
}
