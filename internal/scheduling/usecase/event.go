package usecase

import (
	"context"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
	"conversational-assistant/internal/scheduling/repository"
)

// CreateEvent places one event on the account's calendar.
func (u *implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input scheduling.CreateEventInput) (model.CalendarEvent, error) {
	if input.End.IsZero() {
		input.End = input.Start.Add(scheduling.DefaultEventDuration)
	}
	if !input.End.After(input.Start) {
		return model.CalendarEvent{}, scheduling.ErrInvalidWindow
	}

	ev, err := u.repo.Create(ctx, sc.UserID, repository.CreateOptions{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Start:       input.Start,
		End:         input.End,
		Attendees:   input.Attendees,
	})
	if err != nil {
		u.l.Errorf(ctx, "%s: create: %v", LogPrefixCreateEvent, err)
		return model.CalendarEvent{}, err
	}

	u.l.Infof(ctx, "%s: created %q at %s for user %s", LogPrefixCreateEvent, ev.Title, ev.Start.Format(time.RFC3339), sc.UserID)
	return ev, nil
}

// EventsForDay returns the account's events for one calendar day.
func (u *implUseCase) EventsForDay(ctx context.Context, sc model.Scope, day time.Time) ([]model.CalendarEvent, error) {
	day = day.In(u.loc)
	events, err := u.repo.List(ctx, sc.UserID, startOfDay(day), endOfDay(day))
	if err != nil {
		u.l.Errorf(ctx, "%s: list: %v", LogPrefixEventsForDay, err)
		return nil, err
	}
	return events, nil
}
