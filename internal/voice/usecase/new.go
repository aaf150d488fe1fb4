package usecase

import (
	"time"

	"household-relay/internal/pending"
	"household-relay/internal/trace"
	"household-relay/internal/voice"
	"household-relay/pkg/datemath"
	pkgLog "household-relay/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	deps     voice.Dependencies
	queue    *pending.Queue
	traces   *trace.Store
	dateMath *datemath.Parser
	now      func() time.Time
}

var _ voice.UseCase = (*implUseCase)(nil)

// New creates a new voice UseCase instance.
func New(
	l pkgLog.Logger,
	deps voice.Dependencies,
	queue *pending.Queue,
	traces *trace.Store,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		deps:     deps,
		queue:    queue,
		traces:   traces,
		dateMath: dateMath,
		now:      time.Now,
	}
}
