// Package relay delivers transaction records to the external workflow
// automation endpoints that append them to a spreadsheet. The endpoints are
// opaque: one POST per invocation, success decided by status code alone,
// no retry and no response-body interpretation.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"finmaster/internal/core"
)

// DefaultTimeout bounds both sync calls so an unreachable endpoint degrades
// to a reported failure instead of blocking the interaction indefinitely.
const DefaultTimeout = 10 * time.Second

// ErrNoEndpoint is reported when the endpoint URL is not configured.
var ErrNoEndpoint = errors.New("sync endpoint not configured")

// Status classifies the outcome of a delivery attempt.
type Status int

const (
	// StatusOK means the endpoint answered 200 or 202.
	StatusOK Status = iota
	// StatusRejected means the endpoint answered with any other status code.
	StatusRejected
	// StatusTransportFailure means the request never produced a response.
	StatusTransportFailure
)

// Outcome is the result of one delivery attempt. Callers branch on Ok();
// the extra fields exist only to make failure messaging more specific.
type Outcome struct {
	Status   Status
	HTTPCode int   // set when the endpoint answered
	Err      error // set on transport failure
}

// Ok reports whether the record was accepted by the endpoint.
func (o Outcome) Ok() bool {
	return o.Status == StatusOK
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusOK:
		return fmt.Sprintf("ok (%d)", o.HTTPCode)
	case StatusRejected:
		return fmt.Sprintf("rejected by server (%d)", o.HTTPCode)
	default:
		return fmt.Sprintf("transport failure: %v", o.Err)
	}
}

// Client posts create and update payloads to the two workflow endpoints.
type Client struct {
	http      *http.Client
	createURL string
	updateURL string
}

// NewClient builds a client for the given endpoints. A non-positive timeout
// falls back to DefaultTimeout.
func NewClient(createURL, updateURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		createURL: createURL,
		updateURL: updateURL,
	}
}

type createPayload struct {
	Date     string      `json:"date"`
	Category string      `json:"category"`
	Type     string      `json:"type"`
	Amount   json.Number `json:"amount"`
	Mode     string      `json:"mode"`
	Notes    string      `json:"notes"`
	ID       string      `json:"id"`
}

type updatePayload struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"`
	Category string      `json:"category"`
	Amount   json.Number `json:"amount"`
	Mode     string      `json:"mode"`
	Type     string      `json:"type"`
	Notes    string      `json:"notes"`
}

// Create delivers a full new record, including its generated id.
func (c *Client) Create(ctx context.Context, t core.Transaction) Outcome {
	return c.send(ctx, c.createURL, createPayload{
		Date:     t.Date.String(),
		Category: t.Category,
		Type:     t.Type,
		Amount:   json.Number(t.Amount.String()),
		Mode:     t.Mode,
		Notes:    t.Notes,
		ID:       t.ID,
	})
}

// Update delivers a full replacement of an existing record's fields, keyed
// by its id. The payload is the complete current state, not a delta.
func (c *Client) Update(ctx context.Context, t core.Transaction) Outcome {
	return c.send(ctx, c.updateURL, updatePayload{
		ID:       t.ID,
		Date:     t.Date.String(),
		Category: t.Category,
		Amount:   json.Number(t.Amount.String()),
		Mode:     t.Mode,
		Type:     t.Type,
		Notes:    t.Notes,
	})
}

func (c *Client) send(ctx context.Context, url string, payload any) Outcome {
	if url == "" {
		return Outcome{Status: StatusTransportFailure, Err: ErrNoEndpoint}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{Status: StatusTransportFailure, Err: fmt.Errorf("encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Outcome{Status: StatusTransportFailure, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "Sync delivery failed", "error", err)
		return Outcome{Status: StatusTransportFailure, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted {
		return Outcome{Status: StatusOK, HTTPCode: resp.StatusCode}
	}
	slog.WarnContext(ctx, "Sync rejected by server", "status", resp.StatusCode)
	return Outcome{Status: StatusRejected, HTTPCode: resp.StatusCode}
}
