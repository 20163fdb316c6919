package runner_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/assessflow/config"
	"github.com/lshigami/assessflow/internal/auth"
	"github.com/lshigami/assessflow/internal/controller/runner"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/lshigami/assessflow/internal/quiz"
	"github.com/lshigami/assessflow/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGradebook struct {
	mu        sync.Mutex
	listErr   error
	submitErr error
	submitted []quiz.Submission
}

func (s *stubGradebook) ListAssessments(context.Context, quiz.Identity) ([]quiz.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []quiz.Assessment{{
		ID: 1, Title: "Algebra", PassPercentage: 50, TotalMarks: 3, TimeLimit: 2,
		AttemptsAllowed: 3, Status: quiz.StatusActive,
	}}, nil
}

func (s *stubGradebook) FetchQuestions(context.Context, quiz.Identity, uint) ([]quiz.Question, error) {
	return []quiz.Question{
		{ID: 10, Prompt: "1+1?", Kind: quiz.KindMultipleChoice, Options: []string{"1", "2"}, CorrectOption: 1, Marks: 1},
		{ID: 11, Prompt: "2*3?", Kind: quiz.KindMultipleChoice, Options: []string{"6", "5"}, CorrectOption: 0, Marks: 2},
	}, nil
}

func (s *stubGradebook) SubmitAttempt(_ context.Context, _ quiz.Identity, sub quiz.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitErr != nil {
		return s.submitErr
	}
	s.submitted = append(s.submitted, sub)
	return nil
}

type harness struct {
	router *gin.Engine
	token  string
	gb     *stubGradebook
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gb := &stubGradebook{}
	authn := auth.NewAuthenticatorWithSecret("secret")
	flows := service.NewFlowServiceWithOptions(gb, quiz.Options{Weight: 1})
	t.Cleanup(flows.Shutdown)

	router := gin.New()
	runner.NewFlowController(flows, authn, &config.Config{}).RegisterRoutes(router)

	token, err := authn.Issue("s-1", auth.RoleStudent, time.Hour)
	require.NoError(t, err)
	return &harness{router: router, token: token, gb: gb}
}

func (h *harness) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+h.token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *harness) view(t *testing.T, method, path, body string) quiz.View {
	t.Helper()
	w := h.do(t, method, path, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var v quiz.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestFullAttemptOverHTTP(t *testing.T) {
	h := newHarness(t)

	v := h.view(t, http.MethodGet, "/api/v1/flow", "")
	assert.Equal(t, quiz.ScreenLauncher, v.Screen)
	require.Len(t, v.Launcher.Entries, 1)
	assert.True(t, v.Launcher.Entries[0].CanStart)

	v = h.view(t, http.MethodPost, "/api/v1/flow/assessments/1/open", "")
	assert.Equal(t, quiz.ScreenInstructions, v.Screen)
	assert.Equal(t, 1, v.Instructions.AttemptNumber)

	v = h.view(t, http.MethodPost, "/api/v1/flow/start", "")
	require.Equal(t, quiz.ScreenActive, v.Screen)
	assert.Equal(t, 120, v.Active.RemainingSeconds)
	assert.False(t, v.Active.CanNext)

	h.view(t, http.MethodPut, "/api/v1/flow/answer", `{"option":1}`)
	v = h.view(t, http.MethodPost, "/api/v1/flow/next", "")
	assert.Equal(t, 1, v.Active.Index)
	v = h.view(t, http.MethodPut, "/api/v1/flow/answer", `{"option":0}`)
	assert.True(t, v.Active.CanSubmit)

	v = h.view(t, http.MethodPost, "/api/v1/flow/submit", "")
	require.Equal(t, quiz.ScreenResults, v.Screen)
	assert.Equal(t, 3, v.Results.Score)
	assert.Equal(t, 100, v.Results.ScorePercentage)
	assert.True(t, v.Results.Passed)
	assert.True(t, v.Results.CanRetry)
	assert.Nil(t, v.Results.Breakdown)

	v = h.view(t, http.MethodPost, "/api/v1/flow/breakdown", "")
	assert.Len(t, v.Results.Breakdown, 2)

	v = h.view(t, http.MethodPost, "/api/v1/flow/close", "")
	assert.Equal(t, quiz.ScreenLauncher, v.Screen)
	assert.Equal(t, 1, v.Launcher.Entries[0].AttemptsTaken)
	assert.Equal(t, quiz.ActionRetake, v.Launcher.Entries[0].Action)

	require.Len(t, h.gb.submitted, 1)
	assert.Equal(t, quiz.Submission{StudentID: "s-1", AssessmentID: 1, MaxMarks: 3, Weight: 1, Marks: 3}, h.gb.submitted[0])
}

func TestErrorMapping(t *testing.T) {
	h := newHarness(t)
	h.view(t, http.MethodGet, "/api/v1/flow", "")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"next on launcher", http.MethodPost, "/api/v1/flow/next", "", http.StatusConflict},
		{"start on launcher", http.MethodPost, "/api/v1/flow/start", "", http.StatusConflict},
		{"unknown assessment", http.MethodPost, "/api/v1/flow/assessments/99/open", "", http.StatusNotFound},
		{"bad assessment id", http.MethodPost, "/api/v1/flow/assessments/abc/open", "", http.StatusBadRequest},
		{"answer without option", http.MethodPut, "/api/v1/flow/answer", `{}`, http.StatusBadRequest},
		{"retry on launcher", http.MethodPost, "/api/v1/flow/retry", "", http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, errorOf(t, w).Message)
		})
	}
}

func TestInvalidOptionIsBadRequest(t *testing.T) {
	h := newHarness(t)
	h.view(t, http.MethodGet, "/api/v1/flow", "")
	h.view(t, http.MethodPost, "/api/v1/flow/assessments/1/open", "")
	h.view(t, http.MethodPost, "/api/v1/flow/start", "")

	w := h.do(t, http.MethodPut, "/api/v1/flow/answer", `{"option":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"screen: active"}, errorOf(t, w).Details)
}

func TestCollaboratorFailureIsBadGateway(t *testing.T) {
	h := newHarness(t)
	h.view(t, http.MethodGet, "/api/v1/flow", "")
	h.gb.listErr = errors.Join(quiz.ErrCollaborator, errors.New("status 503"))

	w := h.do(t, http.MethodPost, "/api/v1/flow/refresh", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	h.gb.listErr = nil
	v := h.view(t, http.MethodPost, "/api/v1/flow/refresh", "")
	assert.Empty(t, v.Alert)
}

func TestSubmitFailureStaysActive(t *testing.T) {
	h := newHarness(t)
	h.view(t, http.MethodGet, "/api/v1/flow", "")
	h.view(t, http.MethodPost, "/api/v1/flow/assessments/1/open", "")
	h.view(t, http.MethodPost, "/api/v1/flow/start", "")
	h.view(t, http.MethodPut, "/api/v1/flow/answer", `{"option":1}`)
	h.view(t, http.MethodPost, "/api/v1/flow/next", "")
	h.view(t, http.MethodPut, "/api/v1/flow/answer", `{"option":1}`)
	h.gb.submitErr = quiz.ErrCollaborator

	w := h.do(t, http.MethodPost, "/api/v1/flow/submit", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	v := h.view(t, http.MethodGet, "/api/v1/flow", "")
	require.Equal(t, quiz.ScreenActive, v.Screen)
	assert.Equal(t, 1, v.Active.Index)
	assert.Contains(t, v.Alert, "Submission failed")
}

func TestTimerStream(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodGet, "/api/v1/flow/timer", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "event:screen")
	assert.Contains(t, w.Body.String(), "data:launcher")

	h.view(t, http.MethodPost, "/api/v1/flow/assessments/1/open", "")
	h.view(t, http.MethodPost, "/api/v1/flow/start", "")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flow/timer", nil).WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+h.token)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), "event:tick")
	assert.Contains(t, rec.Body.String(), "data:120")
}

func TestEndFlowAndAuth(t *testing.T) {
	h := newHarness(t)
	h.view(t, http.MethodGet, "/api/v1/flow", "")
	h.view(t, http.MethodPost, "/api/v1/flow/assessments/1/open", "")

	assert.Equal(t, http.StatusNoContent, h.do(t, http.MethodDelete, "/api/v1/flow", "").Code)
	v := h.view(t, http.MethodGet, "/api/v1/flow", "")
	assert.Equal(t, quiz.ScreenLauncher, v.Screen)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flow", nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
