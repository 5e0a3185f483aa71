package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
)

func TestFindOptimalTime(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("weekend start lands on monday morning", func(t *testing.T) {
		saturday := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
		u := newTestUseCase(saturday)

		out, err := u.FindOptimalTime(ctx, sc, time.Hour, nil, scheduling.Preferences{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Best == nil {
			t.Fatal("expected a best slot")
		}
		if want := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC); !out.Best.Equal(want) {
			t.Errorf("best = %s, want %s", out.Best, want)
		}
		if len(out.Alternatives) != scheduling.MaxOptimalAlternatives {
			t.Errorf("got %d alternatives, want %d", len(out.Alternatives), scheduling.MaxOptimalAlternatives)
		}
	})

	t.Run("first day starts from the next slot boundary", func(t *testing.T) {
		monday := time.Date(2026, 3, 2, 10, 10, 0, 0, time.UTC)
		u := newTestUseCase(monday)

		out, err := u.FindOptimalTime(ctx, sc, time.Hour, nil, scheduling.Preferences{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Best == nil {
			t.Fatal("expected a best slot")
		}
		if want := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC); !out.Best.Equal(want) {
			t.Errorf("best = %s, want %s", out.Best, want)
		}
	})

	t.Run("booked day spills to the next working day", func(t *testing.T) {
		monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		u := newTestUseCase(monday)
		mustSeed(t, u, sc.UserID, "Offsite",
			time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))

		out, err := u.FindOptimalTime(ctx, sc, time.Hour, nil, scheduling.Preferences{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Best == nil {
			t.Fatal("expected a best slot")
		}
		if want := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC); !out.Best.Equal(want) {
			t.Errorf("best = %s, want %s", out.Best, want)
		}
	})

	t.Run("morning preference holds the earliest slot first", func(t *testing.T) {
		monday := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		u := newTestUseCase(monday)

		out, err := u.FindOptimalTime(ctx, sc, time.Hour, nil, scheduling.Preferences{PreferMorning: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Best == nil || out.Best.Hour() >= 12 {
			t.Errorf("best = %v, want a morning slot", out.Best)
		}
	})

	t.Run("zero duration is rejected", func(t *testing.T) {
		u := newTestUseCase(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
		_, err := u.FindOptimalTime(ctx, sc, 0, nil, scheduling.Preferences{})
		if !errors.Is(err, scheduling.ErrNoDuration) {
			t.Errorf("got %v, want ErrNoDuration", err)
		}
	})
}
