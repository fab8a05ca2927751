// File: client.go
// Title: Backend API Client
// Description: HTTP client for the FieldTask backend: task fetch and
//              update, attachment upload, batch translation, and the
//              work-order PDF URL. Error responses carry the backend's
//              human-readable message when one is present.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	fterror "fieldtask/internal/core/error"
	"fieldtask/internal/task"
)

// Client is the FieldTask backend API client
type Client struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
}

// Config holds client configuration
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	UploadTimeout time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:       "http://localhost:7071/api",
		Timeout:       30 * time.Second,
		UploadTimeout: 120 * time.Second,
	}
}

// NewClient creates a new backend client
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = DefaultConfig().UploadTimeout
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		uploadClient: &http.Client{Timeout: cfg.UploadTimeout},
	}
}

// errorPayload is the backend's error body shape
type errorPayload struct {
	Error string `json:"error"`
}

// GetTask fetches the full task record
func (c *Client) GetTask(ctx context.Context, taskID string) (*task.Task, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, fterror.New("task id must not be empty").
			WithCode(fterror.CodeInvalidInput).
			WithOperation("api.GetTask")
	}

	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.taskURL(taskID), nil)
	if err != nil {
		return nil, fterror.Wrap(err, "failed to create request").WithOperation("api.GetTask")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(err, "api.GetTask")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, "api.GetTask")
	}

	var record task.Task
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fterror.Wrap(err, "failed to decode task").WithOperation("api.GetTask")
	}
	return &record, nil
}

// UpdateTask submits a technician patch; the response is the subset of
// fields the backend accepted, authoritative for a merge.
func (c *Client) UpdateTask(ctx context.Context, taskID string, payload task.UpdatePayload) (task.UpdateResult, error) {
	var result task.UpdateResult

	if payload.IsEmpty() {
		return result, fterror.New("update payload must not be empty").
			WithCode(fterror.CodeInvalidInput).
			WithOperation("api.UpdateTask")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return result, fterror.Wrap(err, "failed to marshal update").WithOperation("api.UpdateTask")
	}

	httpReq, err := http.NewRequestWithContext(ctx, "PUT", c.taskURL(taskID), bytes.NewReader(body))
	if err != nil {
		return result, fterror.Wrap(err, "failed to create request").WithOperation("api.UpdateTask")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return result, transportError(err, "api.UpdateTask")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, c.statusError(resp, "api.UpdateTask")
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fterror.Wrap(err, "failed to decode update result").WithOperation("api.UpdateTask")
	}
	return result, nil
}

// UploadAttachment submits one encoded file and returns the stored
// attachment reference.
func (c *Client) UploadAttachment(ctx context.Context, taskID string, payload AttachmentUpload) (UploadedAttachment, error) {
	var result UploadedAttachment

	body, err := json.Marshal(payload)
	if err != nil {
		return result, fterror.Wrap(err, "failed to marshal upload").WithOperation("api.UploadAttachment")
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.taskURL(taskID)+"/attachment", bytes.NewReader(body))
	if err != nil {
		return result, fterror.Wrap(err, "failed to create request").WithOperation("api.UploadAttachment")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.uploadClient.Do(httpReq)
	if err != nil {
		return result, transportError(err, "api.UploadAttachment")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return result, c.statusError(resp, "api.UploadAttachment")
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fterror.Wrap(err, "failed to decode upload result").WithOperation("api.UploadAttachment")
	}
	return result, nil
}

// translateRequest is the batch translation request body
type translateRequest struct {
	Texts []string `json:"texts"`
}

// translateResponse is the batch translation response body
type translateResponse struct {
	Translations []string `json:"translations"`
}

// Translate submits an ordered batch of strings and returns the
// positionally aligned translations.
func (c *Client) Translate(ctx context.Context, texts []string) ([]string, error) {
	body, err := json.Marshal(translateRequest{Texts: texts})
	if err != nil {
		return nil, fterror.Wrap(err, "failed to marshal translate request").WithOperation("api.Translate")
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return nil, fterror.Wrap(err, "failed to create request").WithOperation("api.Translate")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(err, "api.Translate")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, "api.Translate")
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fterror.Wrap(err, "failed to decode translations").WithOperation("api.Translate")
	}
	return result.Translations, nil
}

// PDFURL returns the GET-able work-order PDF URL for a task. The PDF is
// opened directly in a browser; the client never touches the body.
func (c *Client) PDFURL(taskID string) string {
	return c.taskURL(taskID) + "/pdf"
}

// Ping checks whether the backend is reachable
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/", nil)
	if err != nil {
		return fterror.Wrap(err, "failed to create request").WithOperation("api.Ping")
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return transportError(err, "api.Ping")
	}
	resp.Body.Close()
	return nil
}

func (c *Client) taskURL(taskID string) string {
	return c.baseURL + "/task/" + url.PathEscape(taskID)
}

// statusError builds a structured error from a non-OK response, keeping
// the backend's human-readable message when the body carries one.
func (c *Client) statusError(resp *http.Response, operation string) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	code := fterror.CodeBackendError
	switch {
	case resp.StatusCode == http.StatusNotFound:
		code = fterror.CodeNotFound
	case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusBadGateway:
		code = fterror.CodeServiceUnavailable
	}

	err := fterror.New(fmt.Sprintf("request failed with status %d", resp.StatusCode)).
		WithCode(code).
		WithOperation(operation).
		WithDetail("status", resp.StatusCode)

	var payload errorPayload
	if jsonErr := json.Unmarshal(bodyBytes, &payload); jsonErr == nil && strings.TrimSpace(payload.Error) != "" {
		err = err.WithServerMessage(payload.Error)
	} else if msg := strings.TrimSpace(string(bodyBytes)); msg != "" && len(msg) < 512 {
		err = err.WithServerMessage(msg)
	}
	return err
}

// transportError wraps a network-level failure
func transportError(err error, operation string) error {
	return fterror.Wrap(err, "request failed").
		WithCode(fterror.CodeTransport).
		WithOperation(operation)
}
