package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/ethos-backend/internal/http/response"
	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

type fakeEthics struct {
	analysis string
	grade    string
	err      error

	lastCtx        context.Context
	lastSituation  string
	lastCompletion string
	lastRubric     string
}

func (f *fakeEthics) Analyze(ctx context.Context, situation string) (string, error) {
	f.lastCtx = ctx
	f.lastSituation = situation
	return f.analysis, f.err
}

func (f *fakeEthics) Grade(ctx context.Context, completion, rubric string) (string, error) {
	f.lastCtx = ctx
	f.lastCompletion = completion
	f.lastRubric = rubric
	return f.grade, f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}
	return log
}

func decodeErrorEnvelope(t *testing.T, body string) response.ErrorEnvelope {
	t.Helper()
	var env response.ErrorEnvelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatalf("decode error envelope: %v (body: %s)", err, body)
	}
	return env
}

func newAnalysisRouter(svc *fakeEthics, log *logger.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/analysis", NewAnalysisHandler(log, svc).Analyze)
	return r
}

func TestAnalyzeRejectsMissingSituation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed json", "{"},
		{"no situation field", `{}`},
		{"empty situation", `{"situation": ""}`},
		{"whitespace situation", `{"situation": "   "}`},
	}

	fake := &fakeEthics{analysis: "should not be called"}
	r := newAnalysisRouter(fake, testLogger(t))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/analysis", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (body: %s)", w.Code, w.Body.String())
			}
			env := decodeErrorEnvelope(t, w.Body.String())
			if env.Type != "error" {
				t.Errorf("unexpected envelope type: %q", env.Type)
			}
			if env.Error.Type != response.TypeInvalidRequest {
				t.Errorf("unexpected error type: %q", env.Error.Type)
			}
			if env.Error.Message != "Situation not provided." {
				t.Errorf("unexpected message: %q", env.Error.Message)
			}
		})
	}
}

func TestAnalyzeReturnsAnalysis(t *testing.T) {
	t.Parallel()

	fake := &fakeEthics{analysis: "structured analysis"}
	r := newAnalysisRouter(fake, testLogger(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analysis", strings.NewReader(`{"situation": "a dilemma"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
	}
	var resp struct {
		Analysis string `json:"analysis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Analysis != "structured analysis" {
		t.Errorf("unexpected analysis: %q", resp.Analysis)
	}
	if fake.lastSituation != "a dilemma" {
		t.Errorf("situation not forwarded: %q", fake.lastSituation)
	}
}

func TestAnalyzeSurvivesCallerCancellation(t *testing.T) {
	t.Parallel()

	fake := &fakeEthics{analysis: "still produced"}
	r := newAnalysisRouter(fake, testLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analysis", strings.NewReader(`{"situation": "a dilemma"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if fake.lastCtx == nil {
		t.Fatal("service was not called")
	}
	if err := fake.lastCtx.Err(); err != nil {
		t.Fatalf("model call context should be detached from the caller, got %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAnalyzeSurfacesServiceError(t *testing.T) {
	t.Parallel()

	fake := &fakeEthics{err: errTest("model unavailable")}
	r := newAnalysisRouter(fake, testLogger(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analysis", strings.NewReader(`{"situation": "a dilemma"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d (body: %s)", w.Code, w.Body.String())
	}
	env := decodeErrorEnvelope(t, w.Body.String())
	if env.Error.Type != response.TypeInternal {
		t.Errorf("unexpected error type: %q", env.Error.Type)
	}
	if !strings.Contains(env.Error.Message, "model unavailable") {
		t.Errorf("error message not surfaced: %q", env.Error.Message)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
