package usecase

import (
	"context"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
	"conversational-assistant/internal/scheduling/repository"
)

// RescheduleEvent moves an event to newStart keeping its original duration.
// With checkConflicts set, a clash leaves the event untouched and reports the
// conflicting events instead.
func (u *implUseCase) RescheduleEvent(ctx context.Context, sc model.Scope, eventID string, newStart time.Time, checkConflicts bool) (scheduling.RescheduleOutput, error) {
	ev, err := u.repo.Get(ctx, sc.UserID, eventID)
	if err != nil {
		u.l.Errorf(ctx, "%s: get %s: %v", LogPrefixReschedule, eventID, err)
		return scheduling.RescheduleOutput{}, err
	}

	duration := ev.End.Sub(ev.Start)
	newEnd := newStart.Add(duration)
	oldStart := ev.Start

	if checkConflicts {
		fetched, err := u.repo.List(ctx, sc.UserID,
			newStart.Add(-scheduling.ConflictFetchPadding),
			newEnd.Add(scheduling.ConflictFetchPadding))
		if err != nil {
			u.l.Errorf(ctx, "%s: list: %v", LogPrefixReschedule, err)
			return scheduling.RescheduleOutput{}, err
		}

		var conflicts []model.CalendarEvent
		for _, other := range overlapping(fetched, newStart, newEnd) {
			if other.ID == eventID {
				continue
			}
			conflicts = append(conflicts, other)
		}
		if len(conflicts) > 0 {
			u.l.Infof(ctx, "%s: %d conflict(s) moving %s, leaving it in place", LogPrefixReschedule, len(conflicts), eventID)
			return scheduling.RescheduleOutput{
				OldStart:  oldStart,
				Conflicts: conflicts,
			}, nil
		}
	}

	updated, err := u.repo.Update(ctx, sc.UserID, repository.UpdateOptions{
		EventID: eventID,
		Start:   newStart,
		End:     newEnd,
	})
	if err != nil {
		u.l.Errorf(ctx, "%s: update %s: %v", LogPrefixReschedule, eventID, err)
		return scheduling.RescheduleOutput{}, err
	}

	u.l.Infof(ctx, "%s: moved %q from %s to %s", LogPrefixReschedule, updated.Title, oldStart.Format(time.RFC3339), newStart.Format(time.RFC3339))
	return scheduling.RescheduleOutput{
		Success:  true,
		Event:    &updated,
		OldStart: oldStart,
	}, nil
}
