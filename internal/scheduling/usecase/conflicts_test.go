package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
	"conversational-assistant/internal/scheduling/repository"
)

func mustSeed(t *testing.T, u *implUseCase, userID string, title string, start, end time.Time) model.CalendarEvent {
	t.Helper()
	ev, err := u.repo.Create(context.Background(), userID, repository.CreateOptions{
		Title: title,
		Start: start,
		End:   end,
	})
	if err != nil {
		t.Fatalf("seed %q: %v", title, err)
	}
	return ev
}

func TestCheckConflicts(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("overlap is detected with same-day suggestions", func(t *testing.T) {
		u := newTestUseCase(monday.Add(8 * time.Hour))
		mustSeed(t, u, sc.UserID, "Standup", monday.Add(10*time.Hour), monday.Add(11*time.Hour))

		res, err := u.CheckConflicts(ctx, sc, monday.Add(10*time.Hour+30*time.Minute), monday.Add(11*time.Hour+30*time.Minute))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.HasConflicts {
			t.Fatal("expected a conflict")
		}
		if len(res.Conflicts) != 1 || res.Conflicts[0].Title != "Standup" {
			t.Errorf("unexpected conflicts: %+v", res.Conflicts)
		}
		if len(res.Suggestions) == 0 {
			t.Fatal("expected suggestions alongside conflicts")
		}
		if want := monday.Add(11 * time.Hour); !res.Suggestions[0].Equal(want) {
			t.Errorf("first suggestion = %s, want %s", res.Suggestions[0], want)
		}
		if len(res.Suggestions) > scheduling.MaxSuggestions {
			t.Errorf("got %d suggestions, cap is %d", len(res.Suggestions), scheduling.MaxSuggestions)
		}
	})

	t.Run("touching boundary is not a conflict", func(t *testing.T) {
		u := newTestUseCase(monday.Add(8 * time.Hour))
		mustSeed(t, u, sc.UserID, "Standup", monday.Add(10*time.Hour), monday.Add(11*time.Hour))

		res, err := u.CheckConflicts(ctx, sc, monday.Add(11*time.Hour), monday.Add(12*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.HasConflicts {
			t.Errorf("back-to-back events reported as conflict: %+v", res.Conflicts)
		}
		if len(res.Suggestions) != 0 {
			t.Errorf("suggestions without conflicts: %v", res.Suggestions)
		}
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		u := newTestUseCase(monday)
		_, err := u.CheckConflicts(ctx, sc, monday.Add(11*time.Hour), monday.Add(10*time.Hour))
		if !errors.Is(err, scheduling.ErrInvalidWindow) {
			t.Errorf("got %v, want ErrInvalidWindow", err)
		}
	})
}

func TestFindFreeTime(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("half-hour scan between events", func(t *testing.T) {
		u := newTestUseCase(monday.Add(8 * time.Hour))
		mustSeed(t, u, sc.UserID, "Standup", monday.Add(10*time.Hour), monday.Add(11*time.Hour))

		slots, err := u.FindFreeTime(ctx, sc, 30*time.Minute, monday.Add(9*time.Hour), monday.Add(10*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []time.Time{monday.Add(9 * time.Hour), monday.Add(9*time.Hour + 30*time.Minute)}
		if len(slots) != len(want) {
			t.Fatalf("got %d slots %v, want %d", len(slots), slots, len(want))
		}
		for i := range want {
			if !slots[i].Equal(want[i]) {
				t.Errorf("slot[%d] = %s, want %s", i, slots[i], want[i])
			}
		}
	})

	t.Run("caps at ten slots", func(t *testing.T) {
		u := newTestUseCase(monday)
		slots, err := u.FindFreeTime(ctx, sc, 30*time.Minute, monday, monday.Add(23*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != scheduling.MaxFreeSlots {
			t.Errorf("got %d slots, want %d", len(slots), scheduling.MaxFreeSlots)
		}
	})

	t.Run("zero duration is rejected", func(t *testing.T) {
		u := newTestUseCase(monday)
		_, err := u.FindFreeTime(ctx, sc, 0, monday, monday.Add(time.Hour))
		if !errors.Is(err, scheduling.ErrNoDuration) {
			t.Errorf("got %v, want ErrNoDuration", err)
		}
	})
}
