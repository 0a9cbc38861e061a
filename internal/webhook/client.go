// Package webhook delivers entry payloads to a user-configured HTTP
// endpoint. Delivery is best-effort: a failed push surfaces as an error for
// the caller to report, never queued or retried.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/google/uuid"
)

// EntryPayload is the JSON body posted for a completed or updated entry.
// Field names match the backup format so receiving pipelines can share
// parsers.
type EntryPayload struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	ClockIn        string  `json:"clockIn"`
	ClockOut       string  `json:"clockOut,omitempty"`
	BreakMinutes   int     `json:"breakTime"`
	TotalHours     float64 `json:"totalHours"`
	Overtime       bool    `json:"isOvertime"`
	CalculatedCost float64 `json:"calculatedCost"`
	WageRate       float64 `json:"wageRate"`
}

// TestPayload is the fixed diagnostic body sent by the manual test action.
type TestPayload struct {
	Test      bool   `json:"test"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewEntryPayload builds the push payload for an entry with its computed
// cost and resolved wage rate.
func NewEntryPayload(e *domain.ShiftEntry, cost, rate float64) EntryPayload {
	p := EntryPayload{
		ID:             e.ID,
		Name:           e.Name,
		Category:       e.Category,
		ClockIn:        e.ClockIn.String(),
		BreakMinutes:   e.BreakMinutes,
		TotalHours:     e.TotalHours,
		Overtime:       e.Overtime,
		CalculatedCost: cost,
		WageRate:       rate,
	}
	if e.ClockOut != nil {
		p.ClockOut = e.ClockOut.String()
	}
	return p
}

// Client posts JSON payloads to a webhook endpoint.
type Client struct {
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a Client with a short dial timeout so an unreachable
// endpoint fails fast instead of hanging the command.
func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		timeout: 10 * time.Second,
	}
}

// PushEntry delivers an entry payload to the endpoint.
func (c *Client) PushEntry(ctx context.Context, url string, p EntryPayload) error {
	return c.post(ctx, url, p)
}

// PushTest delivers the fixed diagnostic payload used by the manual test
// action.
func (c *Client) PushTest(ctx context.Context, url string) error {
	return c.post(ctx, url, TestPayload{
		Test:      true,
		Message:   "tempus connection test",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (c *Client) post(ctx context.Context, url string, body any) error {
	if url == "" {
		return fmt.Errorf("no webhook endpoint configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-Id", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("reaching webhook endpoint: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
