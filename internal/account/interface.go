package account

import (
	"context"

	"conversational-assistant/internal/model"
)

// Store is the interface for account and permission lookups. Accounts are
// provisioned externally; the assistant only reads them.
type Store interface {
	// Get returns the account with the given id.
	Get(ctx context.Context, userID string) (model.Account, error)

	// GetByPhone maps an inbound phone number to an account. Numbers are
	// compared after normalization, so "+1 (555) 010-0000" and
	// "15550100000" match.
	GetByPhone(ctx context.Context, phone string) (model.Account, error)

	// GetPermissions returns the account's permission set. An unknown
	// account yields the zero (all-false) set without an error.
	GetPermissions(ctx context.Context, userID string) (model.Permissions, error)
}
