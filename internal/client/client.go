// Package client is a typed HTTP client for the incident API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Princegupta101/instinctive/internal/models"
)

const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) ListIncidents(ctx context.Context, resolved bool) ([]models.Incident, error) {
	query := url.Values{"resolved": {fmt.Sprint(resolved)}}

	var incidents []models.Incident
	if err := c.do(ctx, http.MethodGet, "/api/incidents?"+query.Encode(), &incidents); err != nil {
		return nil, err
	}

	return incidents, nil
}

func (c *Client) ListCameras(ctx context.Context) ([]models.Camera, error) {
	var cameras []models.Camera
	if err := c.do(ctx, http.MethodGet, "/api/cameras", &cameras); err != nil {
		return nil, err
	}

	return cameras, nil
}

func (c *Client) ToggleResolved(ctx context.Context, id string) (*models.Incident, error) {
	var incident models.Incident
	if err := c.do(ctx, http.MethodPatch, "/api/incidents/"+url.PathEscape(id)+"/resolve", &incident); err != nil {
		return nil, err
	}

	return &incident, nil
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	return apiErr
}
