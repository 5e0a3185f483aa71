package usecase

import (
	"time"

	"conversational-assistant/internal/scheduling"
	"conversational-assistant/internal/scheduling/repository"
	pkgLog "conversational-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.EventStore
	loc  *time.Location

	// now is swappable for tests; everything else reaches the clock through
	// it.
	now func() time.Time
}

// New creates a new scheduling UseCase instance.
func New(l pkgLog.Logger, repo repository.EventStore, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

var _ scheduling.UseCase = (*implUseCase)(nil)
