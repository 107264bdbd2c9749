// Package rest implements a RecordSource over HTTP against the SafetyDesk
// REST backend. One client binds to one report type; it is a thin transport
// with no local state, so the browsing session's snapshot semantics hold.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// Client talks to one report-type collection on the backend.
type Client struct {
	baseURL    string
	reportType string
	httpClient *http.Client
}

// NewClient creates a client for the report type rooted at baseURL.
func NewClient(baseURL, reportType string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		reportType: reportType,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) collectionURL() string {
	return fmt.Sprintf("%s/api/%s", c.baseURL, c.reportType)
}

func (c *Client) recordURL(id string) string {
	return fmt.Sprintf("%s/api/%s/%s", c.baseURL, c.reportType, id)
}

// List fetches the full collection.
func (c *Client) List(ctx context.Context) ([]types.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.collectionURL(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s records: %w", c.reportType, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var records []types.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding %s records: %w", c.reportType, err)
	}
	return records, nil
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, id string) (types.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recordURL(id), nil)
	if err != nil {
		return types.Record{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Record{}, fmt.Errorf("fetching record: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return types.Record{}, types.ErrNotFound
	}
	if err := checkStatus(resp); err != nil {
		return types.Record{}, err
	}

	var rec types.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return types.Record{}, fmt.Errorf("decoding record: %w", err)
	}
	return rec, nil
}

// UpdateStatus PATCHes only the status change.
func (c *Client) UpdateStatus(ctx context.Context, id, status string) error {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}
	return c.sendJSON(ctx, http.MethodPatch, c.recordURL(id), body)
}

// UpdateRecord PUTs the full set of editable fields.
func (c *Client) UpdateRecord(ctx context.Context, id string, fields map[string]any) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshaling update: %w", err)
	}
	return c.sendJSON(ctx, http.MethodPut, c.recordURL(id), body)
}

// Create POSTs a new record as a multipart form: a "record" JSON part plus
// an optional "photo" file part passed through unmodified.
func (c *Client) Create(ctx context.Context, fields map[string]any, attachment *types.Attachment) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	payload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("marshaling record: %w", err)
	}
	if err := w.WriteField("record", string(payload)); err != nil {
		return "", err
	}
	if attachment != nil {
		part, err := w.CreateFormFile("photo", attachment.Filename)
		if err != nil {
			return "", err
		}
		if _, err := part.Write(attachment.Data); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.collectionURL(), &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("creating record: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decoding create response: %w", err)
	}
	return created.ID, nil
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.recordURL(id), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *Client) sendJSON(ctx context.Context, method, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending %s: %w", method, err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

// checkStatus converts a non-2xx response into an error carrying the body.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("backend returned %d: %s", resp.StatusCode, msg)
}
