package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	return log
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewClient(testLogger(t)); err == nil {
		t.Fatal("expected error when ANTHROPIC_API_KEY is missing")
	}
}

func TestCompleteJoinsTextBlocksInOrder(t *testing.T) {
	var gotReq messagesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("unexpected x-api-key header: %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got == "" {
			t.Error("missing anthropic-version header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"first "},{"type":"tool_use"},{"type":"text","text":"second"}]}`))
	}))
	defer srv.Close()

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_BASE_URL", srv.URL)

	c, err := NewClient(testLogger(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	text, err := c.Complete(context.Background(), CompletionRequest{
		Model:       "claude-3-haiku-20240307",
		System:      "system text",
		UserMessage: "user text",
		MaxTokens:   2048,
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != "first second" {
		t.Fatalf("unexpected text: %q", text)
	}

	if gotReq.Model != "claude-3-haiku-20240307" {
		t.Errorf("unexpected model: %q", gotReq.Model)
	}
	if gotReq.MaxTokens != 2048 {
		t.Errorf("unexpected max_tokens: %d", gotReq.MaxTokens)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0.2 {
		t.Errorf("unexpected temperature: %v", gotReq.Temperature)
	}
	if gotReq.System != "system text" {
		t.Errorf("unexpected system: %q", gotReq.System)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestCompleteSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_BASE_URL", srv.URL)

	c, err := NewClient(testLogger(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.Complete(context.Background(), CompletionRequest{
		Model:       "claude-3-opus-20240229",
		UserMessage: "grade this",
		MaxTokens:   256,
	})
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error should carry the status code, got: %v", err)
	}
}

func TestCompleteDoesNotRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_BASE_URL", srv.URL)

	c, err := NewClient(testLogger(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := c.Complete(context.Background(), CompletionRequest{
		Model:       "claude-3-haiku-20240307",
		UserMessage: "hello",
		MaxTokens:   16,
	}); err == nil {
		t.Fatal("expected error for 500 response")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", calls)
	}
}

func TestCompleteAllowsEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_BASE_URL", srv.URL)

	c, err := NewClient(testLogger(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	text, err := c.Complete(context.Background(), CompletionRequest{
		Model:       "claude-3-haiku-20240307",
		UserMessage: "hello",
		MaxTokens:   16,
	})
	if err != nil {
		t.Fatalf("empty content should not be an error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestStatusLabelFromError(t *testing.T) {
	t.Parallel()

	if got := statusFromRespErr(nil, &anthropicHTTPError{StatusCode: 429, Body: "slow down"}); got != "429" {
		t.Errorf("http error: expected 429, got %q", got)
	}
	if got := statusFromRespErr(nil, context.Canceled); got != "canceled" {
		t.Errorf("canceled: got %q", got)
	}
	if got := statusFromRespErr(nil, context.DeadlineExceeded); got != "timeout" {
		t.Errorf("deadline: got %q", got)
	}
	if got := statusFromRespErr(nil, errors.New("boom")); got != "error" {
		t.Errorf("generic: got %q", got)
	}
	if got := statusFromRespErr(nil, nil); got != "unknown" {
		t.Errorf("nil: got %q", got)
	}
}
