package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/questions"
	"github.com/jonathan/resume-insight/internal/server/ratelimit"
)

// stubLLM returns a fixed payload for any prompt.
type stubLLM struct {
	response string
	err      error
}

func (c *stubLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return c.response, c.err
}

func (c *stubLLM) Close() error { return nil }

// newTestServer builds a server with no database and an in-memory
// question bank.
func newTestServer() *Server {
	return &Server{
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
}

func newTestServerWithQuestions(response string) *Server {
	s := newTestServer()
	s.questions = questions.NewService(&stubLLM{response: response}, questions.NewMemoryRepository())
	return s
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyze_MissingText(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{"email": "a@b.com"}`))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyze_TooShort(t *testing.T) {
	s := newTestServer()

	body := `{"text": "too short"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleAnalyze_Success(t *testing.T) {
	s := newTestServer()

	resume := "Rahul Sharma\nrahul.sharma@example.com\n+91 9876543210\n" +
		"Skills\nPython, React, Docker\n\nEducation\nB.Tech from Delhi University, CGPA 8.5/10"
	body, err := json.Marshal(map[string]string{"text": resume})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(string(body)))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Nil(t, resp.ID)
	assert.Equal(t, "Rahul Sharma", resp.Result.PersonalInfo.Name)
	assert.Contains(t, resp.Result.Skills.Technical, "Python")
	assert.GreaterOrEqual(t, resp.Result.QualityScore, 0)
	assert.LessOrEqual(t, resp.Result.QualityScore, 100)
}

func TestHandleGetAnalysis_NoDatabase(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/analyses/some-id", nil)
	req.SetPathValue("id", "some-id")
	w := httptest.NewRecorder()

	s.handleGetAnalysis(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleListJobs_NoDatabase(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	w := httptest.NewRecorder()

	s.handleListJobs(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleScrapeJobs_NoSources(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/jobs/scrape", nil)
	w := httptest.NewRecorder()

	s.handleScrapeJobs(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleGenerateQuestions_NotConfigured(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/questions/generate",
		strings.NewReader(`{"topic": "go"}`))
	w := httptest.NewRecorder()

	s.handleGenerateQuestions(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleGenerateQuestions_MissingTopic(t *testing.T) {
	s := newTestServerWithQuestions("[]")

	req := httptest.NewRequest(http.MethodPost, "/v1/questions/generate",
		strings.NewReader(`{"count": 5}`))
	w := httptest.NewRecorder()

	s.handleGenerateQuestions(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGenerateQuestions_Success(t *testing.T) {
	payload := `[
		{"question": "Which keyword starts a goroutine?", "options": ["go", "run"], "answer": "go"},
		{"question": "What does defer do?", "options": ["Delays a call until return", "Skips a call"], "answer": "Delays a call until return"}
	]`
	s := newTestServerWithQuestions(payload)

	req := httptest.NewRequest(http.MethodPost, "/v1/questions/generate",
		strings.NewReader(`{"topic": "go", "count": 2}`))
	w := httptest.NewRecorder()

	s.handleGenerateQuestions(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Topic     string                     `json:"topic"`
		Questions []questions.StoredQuestion `json:"questions"`
		Count     int                        `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "go", resp.Topic)
	assert.Equal(t, 2, resp.Count)
}

func TestHandleListQuestions_MissingTopic(t *testing.T) {
	s := newTestServerWithQuestions("[]")

	req := httptest.NewRequest(http.MethodGet, "/v1/questions", nil)
	w := httptest.NewRecorder()

	s.handleListQuestions(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_HealthThroughRouter(t *testing.T) {
	s := newTestServer()
	handler := s.withRateLimit(s.withLogging(s.withCORS(s.routes())))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrNotFound{}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrDatabaseUnavailable{}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrGenerationUnavailable{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
