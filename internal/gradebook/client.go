package gradebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lshigami/assessflow/config"
	"github.com/lshigami/assessflow/internal/dto"
	"github.com/rs/zerolog/log"
)

// Client calls the gradebook REST API. Every outcome, including transport
// and decoding failures, comes back as a dto.APIResponse.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.Gradebook.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return NewClientWithHTTP(cfg.Gradebook.BaseURL, &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   3 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConnsPerHost: 10,
		},
	})
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// ListAssessments returns the launcher feed. studentID fills attemptsTaken.
func (c *Client) ListAssessments(ctx context.Context, token, studentID string) dto.APIResponse[[]dto.AssessmentDTO] {
	query := url.Values{}
	if studentID != "" {
		query.Set("student_id", studentID)
	}
	return do[[]dto.AssessmentDTO](ctx, c, http.MethodGet, query, token, nil, "assessments")
}

func (c *Client) FetchQuestions(ctx context.Context, token string, assessmentID uint) dto.APIResponse[[]dto.QuestionDTO] {
	id := strconv.FormatUint(uint64(assessmentID), 10)
	return do[[]dto.QuestionDTO](ctx, c, http.MethodGet, nil, token, nil, "assessments", id, "questions")
}

func (c *Client) SubmitAttempt(ctx context.Context, token string, req dto.SubmitAttemptRequest) dto.APIResponse[dto.SubmissionDTO] {
	return do[dto.SubmissionDTO](ctx, c, http.MethodPost, nil, token, req, "attempts")
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func do[T any](ctx context.Context, c *Client, method string, query url.Values, token string, body any, path ...string) dto.APIResponse[T] {
	u, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return dto.Fail[T](fmt.Sprintf("build url: %v", err))
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return dto.Fail[T](fmt.Sprintf("encode request: %v", err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return dto.Fail[T](fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("url", u).Msg("Gradebook request failed")
		return dto.Fail[T](fmt.Sprintf("network error: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return dto.Fail[T](fmt.Sprintf("read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			if eb.Message != "" {
				msg = eb.Message
			} else if eb.Error != "" {
				msg = eb.Error
			}
		}
		log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("url", u).Str("message", msg).Msg("Gradebook returned an error status")
		return dto.Fail[T](fmt.Sprintf("status %d: %s", resp.StatusCode, msg))
	}

	var out dto.APIResponse[T]
	if err := json.Unmarshal(raw, &out); err != nil {
		return dto.Fail[T](fmt.Sprintf("decode response: %v", err))
	}
	return out
}
