package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jbsipayung/mydiary-cli/internal/logging"
	"github.com/jbsipayung/mydiary-cli/internal/models"
)

// HTTPClient implements Client against a fixed base URL. Requests are
// fire-and-forget: no retry, no client-side timeout beyond http.Client
// defaults, and no coordination between calls in flight.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		log:     log,
	}
}

// do issues one request and optionally decodes the response body into out.
// Every failure mode collapses into ErrRequestFailed with a readable reason.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encoding request: %v", ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", ErrRequestFailed, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	log.Debug(ctx, "sending request")

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error(ctx, "transport error", "error", err)
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "reading response failed", "error", err)
		return fmt.Errorf("%w: reading response: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		reason := serverReason(data, resp.StatusCode)
		log.Error(ctx, "server rejected request", "status", resp.StatusCode)
		return fmt.Errorf("%w: %s", ErrRequestFailed, reason)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			log.Error(ctx, "decoding response failed", "error", err)
			return fmt.Errorf("%w: decoding response: %v", ErrRequestFailed, err)
		}
	}

	log.Debug(ctx, "request succeeded", "status", resp.StatusCode)
	return nil
}

// serverReason prefers the {"error": ...} body the service sends on failure,
// falling back to the bare status code.
func serverReason(data []byte, status int) string {
	var er errorResponse
	if err := json.Unmarshal(data, &er); err == nil && er.Error != "" {
		return er.Error
	}
	return fmt.Sprintf("server returned status %d", status)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/users/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: no token in response", ErrRequestFailed)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	return c.do(ctx, http.MethodPost, "/users", registerRequest{Name: name, Email: email, Password: password}, nil)
}

func (c *HTTPClient) ListDiaries(ctx context.Context, userID int) ([]models.Diary, error) {
	var entries []models.Diary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/diary/%d", userID), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) CreateDiary(ctx context.Context, userID int, title, body string) error {
	return c.do(ctx, http.MethodPost, "/diary/create", createDiaryRequest{UserID: userID, Title: title, Body: body}, nil)
}

// GetDiary decodes the one-element array the detail endpoint returns and
// hands back its first entry.
func (c *HTTPClient) GetDiary(ctx context.Context, id int) (models.Diary, error) {
	var entries []models.Diary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/diary/detail/%d", id), nil, &entries); err != nil {
		return models.Diary{}, err
	}
	if len(entries) == 0 {
		return models.Diary{}, fmt.Errorf("%w: no diary details found", ErrRequestFailed)
	}
	return entries[0], nil
}

func (c *HTTPClient) UpdateDiary(ctx context.Context, id, userID int, title, body string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/diary/update/%d", id),
		updateDiaryRequest{ID: id, UserID: userID, Title: title, Body: body}, nil)
}

func (c *HTTPClient) DeleteDiary(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/diary/delete/%d", id), nil, nil)
}
