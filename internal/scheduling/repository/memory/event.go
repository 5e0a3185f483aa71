// Package memory is an in-process EventStore used for local development and
// tests. Events live only as long as the process.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
	"conversational-assistant/internal/scheduling/repository"
)

type implStore struct {
	mu     sync.RWMutex
	events map[string]map[string]model.CalendarEvent // userID -> eventID -> event
}

// New creates an empty in-memory event store.
func New() *implStore {
	return &implStore{
		events: make(map[string]map[string]model.CalendarEvent),
	}
}

var _ repository.EventStore = (*implStore)(nil)

func (s *implStore) Create(ctx context.Context, userID string, opt repository.CreateOptions) (model.CalendarEvent, error) {
	if !opt.End.After(opt.Start) {
		return model.CalendarEvent{}, scheduling.ErrInvalidWindow
	}

	ev := model.CalendarEvent{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		Location:    opt.Location,
		Start:       opt.Start,
		End:         opt.End,
		Attendees:   append([]string(nil), opt.Attendees...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.events[userID] == nil {
		s.events[userID] = make(map[string]model.CalendarEvent)
	}
	s.events[userID][ev.ID] = ev

	return ev, nil
}

func (s *implStore) List(ctx context.Context, userID string, start, end time.Time) ([]model.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.CalendarEvent
	for _, ev := range s.events[userID] {
		if ev.Overlaps(start, end) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })

	return out, nil
}

func (s *implStore) Get(ctx context.Context, userID, eventID string) (model.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[userID][eventID]
	if !ok {
		return model.CalendarEvent{}, scheduling.ErrEventNotFound
	}
	return ev, nil
}

func (s *implStore) Update(ctx context.Context, userID string, opt repository.UpdateOptions) (model.CalendarEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[userID][opt.EventID]
	if !ok {
		return model.CalendarEvent{}, scheduling.ErrEventNotFound
	}

	if opt.Title != "" {
		ev.Title = opt.Title
	}
	if !opt.Start.IsZero() {
		ev.Start = opt.Start
	}
	if !opt.End.IsZero() {
		ev.End = opt.End
	}
	if !ev.End.After(ev.Start) {
		return model.CalendarEvent{}, scheduling.ErrInvalidWindow
	}

	s.events[userID][opt.EventID] = ev
	return ev, nil
}

func (s *implStore) Delete(ctx context.Context, userID, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[userID][eventID]; !ok {
		return scheduling.ErrEventNotFound
	}
	delete(s.events[userID], eventID)
	return nil
}
