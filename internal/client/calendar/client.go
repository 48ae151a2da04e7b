// Package calendar is the HTTP client for the external calendar/broadcast
// provider. Requests carry the configured timeout; failures surface as errors
// for the sync layer to absorb.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Calendar.BaseURL,
		apiKey:  cfg.Calendar.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Calendar.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type createEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Timezone    string    `json:"timezone"`
	Visibility  string    `json:"visibility"`
	Source      string    `json:"source"`
}

type createEventResponse struct {
	EventID   string `json:"event_id"`
	EventLink string `json:"event_link"`
}

// CreateEvent mirrors a stream on the provider and returns its reference id
// and join link.
func (c *Client) CreateEvent(ctx context.Context, stream *model.Stream) (string, string, error) {
	req := createEventRequest{
		Title:       stream.Title,
		Description: stream.Description,
		Start:       stream.ScheduledStart,
		End:         stream.ScheduledEnd,
		Timezone:    stream.Timezone,
		Visibility:  string(stream.Visibility),
		Source:      string(stream.Source),
	}

	var resp createEventResponse
	if err := c.do(ctx, http.MethodPost, "/api/events", req, &resp); err != nil {
		return "", "", err
	}

	return resp.EventID, resp.EventLink, nil
}

type rescheduleEventRequest struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Timezone string    `json:"timezone"`
}

func (c *Client) RescheduleEvent(ctx context.Context, externalID string, start, end time.Time, timezone string) error {
	req := rescheduleEventRequest{
		Start:    start,
		End:      end,
		Timezone: timezone,
	}

	return c.do(ctx, http.MethodPatch, "/api/events/"+externalID+"/schedule", req, nil)
}

func (c *Client) CancelEvent(ctx context.Context, externalID string) error {
	return c.do(ctx, http.MethodPost, "/api/events/"+externalID+"/cancel", nil, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, externalID string) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+externalID, nil, nil)
}

type updateVisibilityRequest struct {
	Visibility string `json:"visibility"`
}

func (c *Client) UpdateVisibility(ctx context.Context, externalID string, visibility model.StreamVisibility) error {
	req := updateVisibilityRequest{
		Visibility: string(visibility),
	}

	return c.do(ctx, http.MethodPatch, "/api/events/"+externalID+"/visibility", req, nil)
}

type addAttendeesRequest struct {
	Emails []string `json:"emails"`
}

// AddAttendees invites the emails to the provider event in one batch.
func (c *Client) AddAttendees(ctx context.Context, externalID string, emails []string) error {
	if len(emails) == 0 {
		return nil
	}

	req := addAttendeesRequest{
		Emails: emails,
	}

	return c.do(ctx, http.MethodPost, "/api/events/"+externalID+"/attendees", req, nil)
}

type removeAttendeesRequest struct {
	Emails []string `json:"emails"`
}

func (c *Client) RemoveAttendees(ctx context.Context, externalID string, emails []string) error {
	if len(emails) == 0 {
		return nil
	}

	req := removeAttendeesRequest{
		Emails: emails,
	}

	return c.do(ctx, http.MethodDelete, "/api/events/"+externalID+"/attendees", req, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body *bytes.Buffer
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	// Repeating cancel/delete for an already-gone event must look like
	// success, so the sync worker can safely reprocess a task.
	if out == nil && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusConflict) {
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
