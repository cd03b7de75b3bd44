package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"meetapp/domain/dto"
)

const DefaultBaseURL = "http://localhost:3333"

// Config คือ base URL ที่ mobile client ใช้เรียก API
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// ConfigFromEnv reads MEETAPP_API_URL, falling back to DefaultBaseURL.
func ConfigFromEnv() Config {
	base := os.Getenv("MEETAPP_API_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{BaseURL: base, Timeout: 30 * time.Second}
}

// APIError carries the status and the {"error": ...} message of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	token      string
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default().With("component", "api_client"),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken sets the bearer token sent with every later request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// CreateSession logs in and keeps the returned token on the client.
func (c *Client) CreateSession(ctx context.Context, email, password string) (*dto.SessionResponse, error) {
	body := dto.CreateSessionRequest{Email: email, Password: password}

	var session dto.SessionResponse
	if err := c.do(ctx, http.MethodPost, "/sessions", body, &session); err != nil {
		return nil, err
	}
	c.token = session.Token
	return &session, nil
}

// ListMeetups fetches one page; a zero date lists every day.
func (c *Client) ListMeetups(ctx context.Context, page int, date time.Time) ([]dto.MeetupResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if !date.IsZero() {
		q.Set("date", date.Format("2006-01-02"))
	}

	path := "/meetups"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var meetups []dto.MeetupResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &meetups); err != nil {
		return nil, err
	}
	return meetups, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			apiErr.Message = body.Error
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		c.logger.WarnContext(ctx, "API request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"error", apiErr.Message,
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
