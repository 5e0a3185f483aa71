package usecase

import (
	"context"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
	"conversational-assistant/internal/scheduling/repository"
)

// SmartSchedule books the first free preferred time; otherwise it searches
// the request's time range, filters by working hours and buffer time, and
// books the first surviving candidate with up to 3 further alternatives.
func (u *implUseCase) SmartSchedule(ctx context.Context, sc model.Scope, input scheduling.SmartScheduleInput) (scheduling.SmartScheduleOutput, error) {
	if input.Duration <= 0 {
		input.Duration = scheduling.DefaultEventDuration
	}
	prefs := normalizePrefs(input.Prefs)

	// Preferred times are always tried before any automatic search.
	for _, t := range input.PreferredTimes {
		free, err := u.windowFree(ctx, sc, t, t.Add(input.Duration), "")
		if err != nil {
			return scheduling.SmartScheduleOutput{}, err
		}
		if free {
			ev, err := u.book(ctx, sc, input, t)
			if err != nil {
				return scheduling.SmartScheduleOutput{}, err
			}
			return scheduling.SmartScheduleOutput{Success: true, Event: &ev}, nil
		}
	}

	rangeStart, rangeEnd := input.RangeStart, input.RangeEnd
	if rangeStart.IsZero() {
		rangeStart = u.now().In(u.loc)
	}
	if rangeEnd.IsZero() {
		rangeEnd = endOfDay(rangeStart.In(u.loc))
	}

	candidates, err := u.FindFreeTime(ctx, sc, input.Duration, rangeStart, rangeEnd)
	if err != nil {
		return scheduling.SmartScheduleOutput{}, err
	}

	var inHours []time.Time
	for _, t := range candidates {
		local := t.In(u.loc)
		if !isWorkingDay(local, prefs.WorkingDays) {
			continue
		}
		if !withinWorkingHours(local, input.Duration, prefs.WorkingHours) {
			continue
		}
		inHours = append(inHours, t)
	}

	// Buffer filtering is strictly additive: the expanded window
	// [t-buffer, t+duration+buffer) must itself be free.
	var survivors []time.Time
	for _, t := range inHours {
		if prefs.BufferTime <= 0 {
			survivors = append(survivors, t)
			continue
		}
		free, err := u.windowFree(ctx, sc, t.Add(-prefs.BufferTime), t.Add(input.Duration+prefs.BufferTime), "")
		if err != nil {
			return scheduling.SmartScheduleOutput{}, err
		}
		if free {
			survivors = append(survivors, t)
		}
	}

	sortByPreference(survivors, prefs)

	if len(survivors) == 0 {
		// Nothing bookable; offer the in-hours candidates so the user can
		// decide.
		if len(inHours) > scheduling.MaxAlternatives {
			inHours = inHours[:scheduling.MaxAlternatives]
		}
		u.l.Infof(ctx, "%s: no candidate survived filters for user %s", LogPrefixSmartSchedule, sc.UserID)
		return scheduling.SmartScheduleOutput{Success: false, Alternatives: inHours}, nil
	}

	ev, err := u.book(ctx, sc, input, survivors[0])
	if err != nil {
		return scheduling.SmartScheduleOutput{}, err
	}

	alternatives := survivors[1:]
	if len(alternatives) > scheduling.MaxAlternatives {
		alternatives = alternatives[:scheduling.MaxAlternatives]
	}

	return scheduling.SmartScheduleOutput{
		Success:      true,
		Event:        &ev,
		Alternatives: alternatives,
	}, nil
}

// windowFree reports whether [start, end) is clear of events, optionally
// ignoring one event ID.
func (u *implUseCase) windowFree(ctx context.Context, sc model.Scope, start, end time.Time, ignoreEventID string) (bool, error) {
	fetched, err := u.repo.List(ctx, sc.UserID,
		start.Add(-scheduling.ConflictFetchPadding),
		end.Add(scheduling.ConflictFetchPadding))
	if err != nil {
		u.l.Errorf(ctx, "%s: list: %v", LogPrefixSmartSchedule, err)
		return false, err
	}
	for _, ev := range overlapping(fetched, start, end) {
		if ignoreEventID != "" && ev.ID == ignoreEventID {
			continue
		}
		return false, nil
	}
	return true, nil
}

func (u *implUseCase) book(ctx context.Context, sc model.Scope, input scheduling.SmartScheduleInput, start time.Time) (model.CalendarEvent, error) {
	ev, err := u.repo.Create(ctx, sc.UserID, repository.CreateOptions{
		Title:       input.Title,
		Description: input.Description,
		Start:       start,
		End:         start.Add(input.Duration),
		Attendees:   input.Attendees,
	})
	if err != nil {
		u.l.Errorf(ctx, "%s: book: %v", LogPrefixSmartSchedule, err)
		return model.CalendarEvent{}, err
	}
	u.l.Infof(ctx, "%s: booked %q at %s for user %s", LogPrefixSmartSchedule, ev.Title, start.Format(time.RFC3339), sc.UserID)
	return ev, nil
}
