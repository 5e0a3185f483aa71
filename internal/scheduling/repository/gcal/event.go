// Package gcal backs the scheduling EventStore with Google Calendar. Each
// account maps to one calendar ID, defaulting to "primary".
package gcal

import (
	"context"
	"errors"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
	"conversational-assistant/internal/scheduling/repository"
	"conversational-assistant/pkg/gcalendar"
)

// CalendarAPI is the slice of pkg/gcalendar the store needs. Satisfied by
// *gcalendar.Client.
type CalendarAPI interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type implStore struct {
	api       CalendarAPI
	calendars map[string]string // userID -> calendar ID
	timezone  string
}

// New creates a Google-Calendar-backed event store. calendars maps account
// IDs to calendar IDs; unmapped accounts use "primary".
func New(api CalendarAPI, calendars map[string]string, timezone string) *implStore {
	return &implStore{
		api:       api,
		calendars: calendars,
		timezone:  timezone,
	}
}

var _ repository.EventStore = (*implStore)(nil)

func (s *implStore) calendarID(userID string) string {
	if id, ok := s.calendars[userID]; ok && id != "" {
		return id
	}
	return "primary"
}

func (s *implStore) Create(ctx context.Context, userID string, opt repository.CreateOptions) (model.CalendarEvent, error) {
	if !opt.End.After(opt.Start) {
		return model.CalendarEvent{}, scheduling.ErrInvalidWindow
	}

	created, err := s.api.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  s.calendarID(userID),
		Summary:     opt.Title,
		Description: opt.Description,
		Location:    opt.Location,
		StartTime:   opt.Start,
		EndTime:     opt.End,
		Timezone:    s.timezone,
		Attendees:   opt.Attendees,
	})
	if err != nil {
		return model.CalendarEvent{}, err
	}
	return fromGCalEvent(created), nil
}

func (s *implStore) List(ctx context.Context, userID string, start, end time.Time) ([]model.CalendarEvent, error) {
	items, err := s.api.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: s.calendarID(userID),
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		return nil, err
	}

	out := make([]model.CalendarEvent, 0, len(items))
	for i := range items {
		out = append(out, fromGCalEvent(&items[i]))
	}
	return out, nil
}

func (s *implStore) Get(ctx context.Context, userID, eventID string) (model.CalendarEvent, error) {
	item, err := s.api.GetEvent(ctx, s.calendarID(userID), eventID)
	if err != nil {
		return model.CalendarEvent{}, mapNotFound(err)
	}
	return fromGCalEvent(item), nil
}

func (s *implStore) Update(ctx context.Context, userID string, opt repository.UpdateOptions) (model.CalendarEvent, error) {
	updated, err := s.api.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CalendarID: s.calendarID(userID),
		EventID:    opt.EventID,
		Summary:    opt.Title,
		StartTime:  opt.Start,
		EndTime:    opt.End,
		Timezone:   s.timezone,
	})
	if err != nil {
		return model.CalendarEvent{}, mapNotFound(err)
	}
	return fromGCalEvent(updated), nil
}

func (s *implStore) Delete(ctx context.Context, userID, eventID string) error {
	if err := s.api.DeleteEvent(ctx, s.calendarID(userID), eventID); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func mapNotFound(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return scheduling.ErrEventNotFound
	}
	return err
}

func fromGCalEvent(ev *gcalendar.Event) model.CalendarEvent {
	return model.CalendarEvent{
		ID:          ev.ID,
		Title:       ev.Summary,
		Description: ev.Description,
		Start:       ev.StartTime,
		End:         ev.EndTime,
		Attendees:   ev.Attendees,
		Location:    ev.Location,
		HTMLLink:    ev.HtmlLink,
	}
}
