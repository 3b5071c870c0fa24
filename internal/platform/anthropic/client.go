package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/ethos-backend/internal/observability"
	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

const defaultAPIVersion = "2023-06-01"

// CompletionRequest carries one Messages API call. System is optional; the
// rest is required by the API.
type CompletionRequest struct {
	Model       string
	System      string
	UserMessage string
	MaxTokens   int
	Temperature float64
}

// Client is the hosted model client used by the rest of the backend. The
// returned string is the in-order concatenation of the response's text
// blocks. One attempt per call: any failure is returned as-is, no retry.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	apiVersion string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing ANTHROPIC_API_KEY")
	}

	baseURL := strings.TrimSpace(os.Getenv("ANTHROPIC_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	apiVersion := strings.TrimSpace(os.Getenv("ANTHROPIC_VERSION"))
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}

	timeoutSec := 120
	if v := strings.TrimSpace(os.Getenv("ANTHROPIC_TIMEOUT_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	return &client{
		log:        log.With("service", "AnthropicClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type anthropicHTTPError struct {
	StatusCode int
	Body       string
}

func (e *anthropicHTTPError) Error() string {
	return fmt.Sprintf("anthropic http %d: %s", e.StatusCode, e.Body)
}

func (e *anthropicHTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature *float64  `json:"temperature,omitempty"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text,omitempty"`
	} `json:"content"`
	StopReason string `json:"stop_reason,omitempty"`
}

// extractText joins the response's text blocks in arrival order.
func extractText(resp messagesResponse) string {
	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != "" {
			out.WriteString(block.Text)
		}
	}
	return out.String()
}

func (c *client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if strings.TrimSpace(req.Model) == "" {
		return "", errors.New("model required")
	}
	if strings.TrimSpace(req.UserMessage) == "" {
		return "", errors.New("user message required")
	}
	if req.MaxTokens <= 0 {
		return "", errors.New("max_tokens required")
	}

	body := messagesRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		System:    strings.TrimSpace(req.System),
		Messages:  []message{{Role: "user", Content: req.UserMessage}},
	}
	if req.Temperature > 0 {
		body.Temperature = &req.Temperature
	}

	start := time.Now()
	resp, raw, err := c.doOnce(ctx, body)
	if metrics := observability.Current(); metrics != nil {
		metrics.ObserveLLMRequest(req.Model, statusFromRespErr(resp, err), time.Since(start))
	}
	if err != nil {
		return "", err
	}

	var out messagesResponse
	if uErr := json.Unmarshal(raw, &out); uErr != nil {
		return "", fmt.Errorf("anthropic decode error: %w; raw=%s", uErr, string(raw))
	}

	// A 2xx response with no text blocks yields an empty string, not an
	// error; callers pass it through as an empty result.
	return extractText(out), nil
}

func (c *client) doOnce(ctx context.Context, body messagesRequest) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", c.apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, raw, &anthropicHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, raw, nil
}

func statusFromRespErr(resp *http.Response, err error) string {
	if resp != nil {
		return strconv.Itoa(resp.StatusCode)
	}
	var httpErr *anthropicHTTPError
	if err != nil && errors.As(err, &httpErr) {
		return strconv.Itoa(httpErr.HTTPStatusCode())
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if err != nil {
		return "error"
	}
	return "unknown"
}
