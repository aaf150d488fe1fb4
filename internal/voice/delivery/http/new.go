package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"household-relay/internal/pending"
	"household-relay/internal/trace"
	"household-relay/internal/voice"
	"household-relay/pkg/log"
)

// Handler is the public interface for the voice HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
	Execute(c *gin.Context)
	Undo(c *gin.Context)
	PeekPending(c *gin.Context)
	ConsumePending(c *gin.Context)
	ListTrace(c *gin.Context)
	SetTraceEnabled(c *gin.Context)
	ClearTrace(c *gin.Context)
}

const (
	undoCacheSize = 256
	undoTTL       = 5 * time.Minute
)

type handler struct {
	l      log.Logger
	uc     voice.UseCase
	queue  *pending.Queue
	traces *trace.Store

	// Undo closures parked between execute and a possible undo call.
	// Entries expire; a stale token is reported, never replayed.
	undos *expirable.LRU[string, voice.Undo]
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the voice domain.
func New(l log.Logger, uc voice.UseCase, queue *pending.Queue, traces *trace.Store) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		queue:  queue,
		traces: traces,
		undos:  expirable.NewLRU[string, voice.Undo](undoCacheSize, nil, undoTTL),
	}
}
