package usecase

import (
	"context"
	"testing"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
)

func TestSmartSchedule_PreferredTimes(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("first free preferred time wins without search", func(t *testing.T) {
		u := newTestUseCase(monday.Add(8 * time.Hour))

		out, err := u.SmartSchedule(ctx, sc, scheduling.SmartScheduleInput{
			Title:    "Design Review",
			Duration: time.Hour,
			PreferredTimes: []time.Time{
				monday.Add(14 * time.Hour),
				monday.Add(15 * time.Hour),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success || out.Event == nil {
			t.Fatalf("expected a booking, got %+v", out)
		}
		if want := monday.Add(14 * time.Hour); !out.Event.Start.Equal(want) {
			t.Errorf("booked at %s, want first preferred time %s", out.Event.Start, want)
		}
		if len(out.Alternatives) != 0 {
			t.Errorf("preferred-time booking should not carry alternatives: %v", out.Alternatives)
		}
	})

	t.Run("blocked preferences fall through in order", func(t *testing.T) {
		u := newTestUseCase(monday.Add(8 * time.Hour))
		mustSeed(t, u, sc.UserID, "Standup", monday.Add(10*time.Hour), monday.Add(11*time.Hour))

		out, err := u.SmartSchedule(ctx, sc, scheduling.SmartScheduleInput{
			Title:    "Design Review",
			Duration: time.Hour,
			PreferredTimes: []time.Time{
				monday.Add(10*time.Hour + 30*time.Minute),
				monday.Add(14 * time.Hour),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Event == nil || !out.Event.Start.Equal(monday.Add(14*time.Hour)) {
			t.Fatalf("expected booking at second preference, got %+v", out.Event)
		}
	})
}

func TestSmartSchedule_Fallback(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("searches the range inside working hours", func(t *testing.T) {
		u := newTestUseCase(monday.Add(8 * time.Hour))
		mustSeed(t, u, sc.UserID, "Workshop", monday.Add(9*time.Hour), monday.Add(12*time.Hour))

		out, err := u.SmartSchedule(ctx, sc, scheduling.SmartScheduleInput{
			Title:      "Sync",
			Duration:   time.Hour,
			RangeStart: monday.Add(9 * time.Hour),
			RangeEnd:   monday.Add(17 * time.Hour),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Event == nil || !out.Event.Start.Equal(monday.Add(12*time.Hour)) {
			t.Fatalf("expected booking at 12:00, got %+v", out.Event)
		}
		if len(out.Alternatives) != scheduling.MaxAlternatives {
			t.Fatalf("got %d alternatives, want %d", len(out.Alternatives), scheduling.MaxAlternatives)
		}
		if want := monday.Add(12*time.Hour + 30*time.Minute); !out.Alternatives[0].Equal(want) {
			t.Errorf("first alternative = %s, want %s", out.Alternatives[0], want)
		}
	})

	t.Run("afternoon preference reorders candidates", func(t *testing.T) {
		u := newTestUseCase(monday.Add(8 * time.Hour))

		out, err := u.SmartSchedule(ctx, sc, scheduling.SmartScheduleInput{
			Title:      "Sync",
			Duration:   time.Hour,
			RangeStart: monday.Add(9 * time.Hour),
			RangeEnd:   monday.Add(17 * time.Hour),
			Prefs:      scheduling.Preferences{PreferAfternoon: true},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Event == nil || !out.Event.Start.Equal(monday.Add(12*time.Hour)) {
			t.Fatalf("expected the earliest afternoon slot, got %+v", out.Event)
		}
	})

	t.Run("buffer time keeps clearance on both sides", func(t *testing.T) {
		u := newTestUseCase(monday.Add(8 * time.Hour))
		mustSeed(t, u, sc.UserID, "Standup", monday.Add(10*time.Hour), monday.Add(11*time.Hour))

		out, err := u.SmartSchedule(ctx, sc, scheduling.SmartScheduleInput{
			Title:      "Catch-up",
			Duration:   30 * time.Minute,
			RangeStart: monday.Add(9 * time.Hour),
			RangeEnd:   monday.Add(12*time.Hour + 30*time.Minute),
			Prefs:      scheduling.Preferences{BufferTime: 30 * time.Minute},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Event == nil || !out.Event.Start.Equal(monday.Add(9*time.Hour)) {
			t.Fatalf("expected booking at 09:00, got %+v", out.Event)
		}
		// 09:30 and 11:00 sit too close to the standup once the buffer is
		// applied.
		want := []time.Time{
			monday.Add(11*time.Hour + 30*time.Minute),
			monday.Add(12 * time.Hour),
		}
		if len(out.Alternatives) != len(want) {
			t.Fatalf("alternatives = %v, want %v", out.Alternatives, want)
		}
		for i := range want {
			if !out.Alternatives[i].Equal(want[i]) {
				t.Errorf("alternative[%d] = %s, want %s", i, out.Alternatives[i], want[i])
			}
		}
	})

	t.Run("fully booked day reports failure instead of error", func(t *testing.T) {
		u := newTestUseCase(monday.Add(8 * time.Hour))
		mustSeed(t, u, sc.UserID, "Offsite", monday.Add(9*time.Hour), monday.Add(17*time.Hour))

		out, err := u.SmartSchedule(ctx, sc, scheduling.SmartScheduleInput{
			Title:      "Sync",
			Duration:   time.Hour,
			RangeStart: monday.Add(9 * time.Hour),
			RangeEnd:   monday.Add(17 * time.Hour),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Success || out.Event != nil {
			t.Errorf("expected a failed schedule, got %+v", out)
		}
	})
}
