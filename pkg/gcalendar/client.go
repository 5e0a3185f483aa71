package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start: &calendar.EventDateTime{
			// time.RFC3339 embeds timezone info directly
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	for _, email := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	created, err := c.service.Events.Insert(defaultCalendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	out := fromAPIEvent(created)
	// The API may echo truncated times; trust what we sent.
	out.StartTime = req.StartTime
	out.EndTime = req.EndTime
	return out, nil
}

// ListEvents returns single events in [TimeMin, TimeMax), expanded and ordered
// by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(defaultCalendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, *fromAPIEvent(item))
	}
	return events, nil
}

// GetEvent fetches one event by ID.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*Event, error) {
	item, err := c.service.Events.Get(defaultCalendarID(calendarID), eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	return fromAPIEvent(item), nil
}

// UpdateEvent patches an existing event. Only non-zero fields are sent.
func (c *Client) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error) {
	patch := &calendar.Event{}
	if req.Summary != "" {
		patch.Summary = req.Summary
	}
	if !req.StartTime.IsZero() {
		patch.Start = &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
	}
	if !req.EndTime.IsZero() {
		patch.End = &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
	}

	updated, err := c.service.Events.Patch(defaultCalendarID(req.CalendarID), req.EventID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	return fromAPIEvent(updated), nil
}

// DeleteEvent removes one event by ID.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.service.Events.Delete(defaultCalendarID(calendarID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func defaultCalendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

// fromAPIEvent converts a calendar API event, handling both timed and all-day
// start/end shapes.
func fromAPIEvent(item *calendar.Event) *Event {
	out := &Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Location:    item.Location,
	}
	out.StartTime = parseEventTime(item.Start)
	out.EndTime = parseEventTime(item.End)
	for _, a := range item.Attendees {
		out.Attendees = append(out.Attendees, a.Email)
	}
	return out
}

func parseEventTime(edt *calendar.EventDateTime) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
