// Package client provides a Go client for the studio admin API, plus a
// per-page record store that mirrors server state locally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/studio-admin-api/internal/models"
)

// APIError is a failure reported by the server, carrying the HTTP status
// and the server's stated reason.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Account is the wire shape of an authenticated account.
type Account struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Client talks to the admin API. The session cookie set by Login is held
// in an internal jar and sent on every subsequent request.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// do performs one JSON round-trip. A 4xx/5xx response is decoded into an
// APIError; on success the body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var failure struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		message := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil {
			if failure.Error != "" {
				message = failure.Error
			} else if failure.Message != "" {
				message = failure.Message
			}
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// Signup registers a new admin account.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*Account, error) {
	var resp struct {
		User Account `json:"user"`
	}
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login establishes a session. The session cookie lives in the client's
// jar until Logout or expiry.
func (c *Client) Login(ctx context.Context, email, password string) (*Account, error) {
	var resp struct {
		User Account `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Me returns the account behind the current session.
func (c *Client) Me(ctx context.Context) (*Account, error) {
	var resp struct {
		User Account `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Resource gives typed access to one record collection. T is the record
// type, I its write payload.
type Resource[T any, I any] struct {
	client *Client
	path   string
}

// NewResource creates typed access to the collection mounted at path.
func NewResource[T any, I any](c *Client, path string) *Resource[T, I] {
	return &Resource[T, I]{client: c, path: path}
}

// Posts returns typed access to blog posts.
func Posts(c *Client) *Resource[models.BlogPost, models.BlogPostInput] {
	return NewResource[models.BlogPost, models.BlogPostInput](c, "/api/blog")
}

// Classes returns typed access to dance classes.
func Classes(c *Client) *Resource[models.ClassRecord, models.ClassInput] {
	return NewResource[models.ClassRecord, models.ClassInput](c, "/api/classes")
}

// Coaches returns typed access to coaches.
func Coaches(c *Client) *Resource[models.Coach, models.CoachInput] {
	return NewResource[models.Coach, models.CoachInput](c, "/api/coaches")
}

// Events returns typed access to studio events.
func Events(c *Client) *Resource[models.Event, models.EventInput] {
	return NewResource[models.Event, models.EventInput](c, "/api/events")
}

// Products returns typed access to shop products.
func Products(c *Client) *Resource[models.Product, models.ProductInput] {
	return NewResource[models.Product, models.ProductInput](c, "/api/products")
}

// List fetches every record in the collection.
func (r *Resource[T, I]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create adds a new record and returns the server's view of it.
func (r *Resource[T, I]) Create(ctx context.Context, in *I) (*T, error) {
	var record T
	if err := r.client.do(ctx, http.MethodPost, r.path, in, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Get fetches one record by identity.
func (r *Resource[T, I]) Get(ctx context.Context, id int) (*T, error) {
	var record T
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.path, id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update replaces the editable fields of a record.
func (r *Resource[T, I]) Update(ctx context.Context, id int, in *I) (*T, error) {
	var record T
	if err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), in, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateStatus patches only the status of a record.
func (r *Resource[T, I]) UpdateStatus(ctx context.Context, id int, status string) (*T, error) {
	var record T
	body := map[string]string{"status": status}
	if err := r.client.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", r.path, id), body, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a record.
func (r *Resource[T, I]) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
}
