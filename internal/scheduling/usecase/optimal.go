package usecase

import (
	"context"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
)

// FindOptimalTime scans the next two weeks of the owner's calendar for open
// slots inside working hours. Attendee calendars are not consulted; the
// attendee list only travels with the eventual booking.
func (u *implUseCase) FindOptimalTime(ctx context.Context, sc model.Scope, duration time.Duration, attendees []string, prefs scheduling.Preferences) (scheduling.OptimalTimeOutput, error) {
	if duration <= 0 {
		return scheduling.OptimalTimeOutput{}, scheduling.ErrNoDuration
	}
	p := normalizePrefs(prefs)

	horizon := u.now().In(u.loc)
	var candidates []time.Time

	for day := 0; day < scheduling.OptimalSearchDays; day++ {
		d := horizon.AddDate(0, 0, day)
		if !isWorkingDay(d, p.WorkingDays) {
			continue
		}

		dayStart := time.Date(d.Year(), d.Month(), d.Day(), p.WorkingHours.Start, 0, 0, 0, u.loc)
		dayEnd := time.Date(d.Year(), d.Month(), d.Day(), p.WorkingHours.End, 0, 0, 0, u.loc)
		if day == 0 && horizon.After(dayStart) {
			// Round the first day up to the next slot boundary.
			dayStart = horizon.Truncate(scheduling.ScanGranularity)
			if dayStart.Before(horizon) {
				dayStart = dayStart.Add(scheduling.ScanGranularity)
			}
		}
		if dayStart.Add(duration).After(dayEnd) {
			continue
		}

		busy, err := u.repo.List(ctx, sc.UserID, dayStart, dayEnd)
		if err != nil {
			u.l.Errorf(ctx, "%s: list day %s: %v", LogPrefixFindOptimalTime, d.Format("2006-01-02"), err)
			return scheduling.OptimalTimeOutput{}, err
		}

		free := scanFree(busy, duration, dayStart, dayEnd, scheduling.MaxOptimalAlternatives+1)
		candidates = append(candidates, free...)

		if len(candidates) > scheduling.MaxOptimalAlternatives {
			break
		}
	}

	sortByPreference(candidates, p)

	if len(candidates) == 0 {
		u.l.Infof(ctx, "%s: no open slot in the next %d days for user %s", LogPrefixFindOptimalTime, scheduling.OptimalSearchDays, sc.UserID)
		return scheduling.OptimalTimeOutput{}, nil
	}

	out := scheduling.OptimalTimeOutput{Best: &candidates[0]}
	rest := candidates[1:]
	if len(rest) > scheduling.MaxOptimalAlternatives {
		rest = rest[:scheduling.MaxOptimalAlternatives]
	}
	out.Alternatives = rest
	return out, nil
}
