package memory_test

import (
	"context"
	"errors"
	"testing"

	"conversational-assistant/internal/account"
	"conversational-assistant/internal/account/memory"
	"conversational-assistant/internal/model"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := memory.New([]model.Account{
		{
			ID:    "user-1",
			Name:  "Asha",
			Phone: "+91 98765 43210",
			Permissions: model.Permissions{
				Email:    true,
				Calendar: true,
			},
		},
	})

	t.Run("get by id", func(t *testing.T) {
		a, err := store.Get(ctx, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Name != "Asha" {
			t.Errorf("name = %q, want Asha", a.Name)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, "nobody")
		if !errors.Is(err, account.ErrAccountNotFound) {
			t.Errorf("got %v, want ErrAccountNotFound", err)
		}
	})

	t.Run("phone lookup ignores formatting", func(t *testing.T) {
		a, err := store.GetByPhone(ctx, "919876543210")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID != "user-1" {
			t.Errorf("id = %q, want user-1", a.ID)
		}
	})

	t.Run("unknown phone", func(t *testing.T) {
		_, err := store.GetByPhone(ctx, "+15550100000")
		if !errors.Is(err, account.ErrAccountNotFound) {
			t.Errorf("got %v, want ErrAccountNotFound", err)
		}
	})

	t.Run("permissions for unknown account are all false", func(t *testing.T) {
		perms, err := store.GetPermissions(ctx, "nobody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if perms.Any() {
			t.Errorf("expected the zero permission set, got %+v", perms)
		}
	})

	t.Run("permissions for known account", func(t *testing.T) {
		perms, err := store.GetPermissions(ctx, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !perms.Email || !perms.Calendar || perms.SMS {
			t.Errorf("unexpected permissions: %+v", perms)
		}
	})
}
