// Package client implements the consumer side of the society management
// API: a typed HTTP client plus the per-entity stores that back the UI
// (list, form draft, edit mode, loading and error state).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
	"github.com/NEMOzzzzzzzzzz/sms/models"
)

// DefaultTimeout bounds every API call; expiry is treated as the storage
// being unavailable.
const DefaultTimeout = 10 * time.Second

// Client talks to one server. The base URL is injected at construction and
// never hardcoded, so tests can point it at an httptest server.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: DefaultTimeout})
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	return &Client{baseURL: baseURL, httpc: httpc}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return code.New(code.ErrUnknown, "encode request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return code.New(code.ErrUnknown, "build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Connection refused, DNS failure, timeout: all transient from the
		// store's point of view.
		return code.StorageUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return classify(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return code.New(code.ErrUnknown, "decode response: %v", err)
		}
	}
	return nil
}

// classify turns a non-2xx response into a tagged error. A 404 carrying the
// service's {"error": ...} body is a genuine lookup miss; a bare 404 is the
// router saying the route does not exist, which means the feature is not
// implemented on this server.
func classify(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Error string `json:"error"`
	}
	hasErrorBody := json.Unmarshal(raw, &payload) == nil && payload.Error != ""

	if resp.StatusCode == http.StatusNotFound && !hasErrorBody {
		return code.NotImplemented(resp.Request.URL.Path)
	}

	errCode := code.StatusToCode(resp.StatusCode)
	msg := payload.Error
	if msg == "" {
		msg = fmt.Sprintf("%s: %s", code.GetMessage(errCode), http.StatusText(resp.StatusCode))
	}
	return code.New(errCode, "%s", msg)
}

// EntityAPI binds the four REST operations of one resource family.
type EntityAPI[T any, D any] struct {
	client *Client
	path   string
}

// List fetches all documents for the entity.
func (a *EntityAPI[T, D]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := a.client.do(ctx, http.MethodGet, a.path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create persists a new document from the draft.
func (a *EntityAPI[T, D]) Create(ctx context.Context, draft *D) (*T, error) {
	var item T
	if err := a.client.do(ctx, http.MethodPost, a.path, draft, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges the draft into the document with the given id.
func (a *EntityAPI[T, D]) Update(ctx context.Context, id uint, draft *D) (*T, error) {
	var item T
	if err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", a.path, id), draft, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the document with the given id.
func (a *EntityAPI[T, D]) Delete(ctx context.Context, id uint) error {
	return a.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", a.path, id), nil, nil)
}

// Residents returns the resident resource API.
func (c *Client) Residents() *EntityAPI[models.Resident, models.ResidentDraft] {
	return &EntityAPI[models.Resident, models.ResidentDraft]{client: c, path: "/api/residents"}
}

// Payments returns the payment resource API.
func (c *Client) Payments() *EntityAPI[models.Payment, models.PaymentDraft] {
	return &EntityAPI[models.Payment, models.PaymentDraft]{client: c, path: "/api/payments"}
}

// Announcements returns the announcement resource API.
func (c *Client) Announcements() *EntityAPI[models.Announcement, models.AnnouncementDraft] {
	return &EntityAPI[models.Announcement, models.AnnouncementDraft]{client: c, path: "/api/announcements"}
}
