package usecase

import (
	"context"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
)

// CheckConflicts reports events overlapping [start, end). Suggestions are
// computed only when conflicts exist.
func (u *implUseCase) CheckConflicts(ctx context.Context, sc model.Scope, start, end time.Time) (scheduling.ConflictResult, error) {
	if !end.After(start) {
		return scheduling.ConflictResult{}, scheduling.ErrInvalidWindow
	}

	fetched, err := u.repo.List(ctx, sc.UserID,
		start.Add(-scheduling.ConflictFetchPadding),
		end.Add(scheduling.ConflictFetchPadding))
	if err != nil {
		u.l.Errorf(ctx, "%s: list: %v", LogPrefixCheckConflicts, err)
		return scheduling.ConflictResult{}, err
	}

	conflicts := overlapping(fetched, start, end)
	if len(conflicts) == 0 {
		return scheduling.ConflictResult{}, nil
	}

	// Alternatives of the same duration, later the same day.
	duration := end.Sub(start)
	suggestions, err := u.FindFreeTime(ctx, sc, duration, start, endOfDay(start.In(u.loc)))
	if err != nil {
		// Conflicts are still worth reporting without suggestions.
		u.l.Warnf(ctx, "%s: suggestions: %v", LogPrefixCheckConflicts, err)
		suggestions = nil
	}
	if len(suggestions) > scheduling.MaxSuggestions {
		suggestions = suggestions[:scheduling.MaxSuggestions]
	}

	return scheduling.ConflictResult{
		HasConflicts: true,
		Conflicts:    conflicts,
		Suggestions:  suggestions,
	}, nil
}

// FindFreeTime returns the first conflict-free starts in chronological order,
// scanning at 30-minute granularity.
func (u *implUseCase) FindFreeTime(ctx context.Context, sc model.Scope, duration time.Duration, searchStart, searchEnd time.Time) ([]time.Time, error) {
	if duration <= 0 {
		return nil, scheduling.ErrNoDuration
	}

	busy, err := u.repo.List(ctx, sc.UserID, searchStart, searchEnd)
	if err != nil {
		u.l.Errorf(ctx, "%s: list: %v", LogPrefixFindFreeTime, err)
		return nil, err
	}

	return scanFree(busy, duration, searchStart, searchEnd, scheduling.MaxFreeSlots), nil
}
