package inspections

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"roofsite/internal/models"
)

const (
	tableName  = "inspections"
	listSelect = "id,name,phone,address,message,preferred_time,source_page,utm_source,created_at"
)

var ErrNotConfigured = errors.New("inspections REST endpoint is not configured")

// RESTError is a non-2xx answer from the REST service.
type RESTError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *RESTError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("rest service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("rest service returned status %d: %s", e.StatusCode, e.Message)
}

// Rejected reports whether the service refused the request itself (4xx)
// rather than failing to process it.
func (e *RESTError) Rejected() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// Client talks to the PostgREST endpoint in front of the inspections table
// using the service role key.
type Client struct {
	baseURL string
	key     string
	client  *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     serviceKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.baseURL != "" && c.key != ""
}

// Insert stores one lead. Absent optional fields are sent as null.
func (c *Client) Insert(ctx context.Context, in models.NewInspection) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal([]models.NewInspection{in})
	if err != nil {
		return fmt.Errorf("failed to marshal inspection: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.tableURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to insert inspection: %w", err)
	}
	defer resp.Body.Close()

	return checkResponse(resp)
}

// List returns every lead, newest first.
func (c *Client) List(ctx context.Context) ([]models.Inspection, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	url := c.tableURL() + "?select=" + listSelect + "&order=created_at.desc"
	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return nil, err
	}

	inspections := []models.Inspection{}
	if err := json.NewDecoder(resp.Body).Decode(&inspections); err != nil {
		return nil, fmt.Errorf("failed to decode inspections: %w", err)
	}
	return inspections, nil
}

func (c *Client) tableURL() string {
	return fmt.Sprintf("%s/rest/v1/%s", c.baseURL, tableName)
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	return req, nil
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	restErr := &RESTError{StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, restErr); err != nil {
		restErr.Message = strings.TrimSpace(string(raw))
	}
	restErr.StatusCode = resp.StatusCode
	return restErr
}
