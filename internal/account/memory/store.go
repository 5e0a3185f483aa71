// Package memory is a config-seeded account store. Accounts are loaded once
// at startup and never change while the process runs.
package memory

import (
	"context"
	"strings"
	"sync"

	"conversational-assistant/internal/account"
	"conversational-assistant/internal/model"
)

type implStore struct {
	mu      sync.RWMutex
	byID    map[string]model.Account
	byPhone map[string]string // normalized phone -> account id
}

// New creates a store seeded with the given accounts.
func New(accounts []model.Account) *implStore {
	s := &implStore{
		byID:    make(map[string]model.Account, len(accounts)),
		byPhone: make(map[string]string),
	}
	for _, a := range accounts {
		s.byID[a.ID] = a
		if a.Phone != "" {
			s.byPhone[normalizePhone(a.Phone)] = a.ID
		}
	}
	return s
}

var _ account.Store = (*implStore)(nil)

func (s *implStore) Get(ctx context.Context, userID string) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[userID]
	if !ok {
		return model.Account{}, account.ErrAccountNotFound
	}
	return a, nil
}

func (s *implStore) GetByPhone(ctx context.Context, phone string) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byPhone[normalizePhone(phone)]
	if !ok {
		return model.Account{}, account.ErrAccountNotFound
	}
	return s.byID[id], nil
}

func (s *implStore) GetPermissions(ctx context.Context, userID string) (model.Permissions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[userID]
	if !ok {
		return model.Permissions{}, nil
	}
	return a.Permissions, nil
}

// normalizePhone strips everything but digits so formatting differences do
// not break the lookup.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
