package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"household-relay/internal/voice"
	"household-relay/internal/voice/catalog"
	"household-relay/pkg/response"
)

// Route godoc
// @Summary     Interpret an utterance
// @Description Maps free text plus screen context to a ranked, slot-filled interpretation.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Utterance and screen context"
// @Success     200 {object} interpretationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/voice/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	rc := voice.NewRouteContext(req.Pathname, req.FamilyModeEnabled, req.SelectedDate)
	interp := h.uc.Route(ctx, req.Text, rc)

	response.OK(c, newInterpretationResp(interp))
}

// Execute godoc
// @Summary     Execute a confirmed interpretation
// @Description Carries out the action for an intent and slot set, returning the outcome and an undo token when the mutation is reversible.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body executeReq true "Intent and slots to execute"
// @Success     200 {object} outcomeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/voice/execute [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	spec, ok := catalog.Get(voice.Intent(req.Intent))
	if !ok {
		response.Error(c, errUnknownIntent, map[string]interface{}{"intent": req.Intent})
		return
	}

	interp := voice.Interpretation{
		Intent: spec.Name,
		Spec:   spec,
		Slots:  voice.SlotValues(req.Slots),
	}
	out := h.uc.Execute(ctx, interp)

	token := ""
	if out.Undo != nil {
		token = uuid.NewString()
		h.undos.Add(token, *out.Undo)
	}

	response.OK(c, newOutcomeResp(out, token))
}

// Undo godoc
// @Summary     Undo a previous execution
// @Description Reverses the mutation behind an undo token. Tokens are single-use and expire after a few minutes.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body undoReq true "Undo token"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown or expired token"
// @Router      /api/v1/voice/undo [POST]
func (h *handler) Undo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUndoReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	undo, ok := h.undos.Get(req.UndoToken)
	if !ok {
		response.NotFound(c, "unknown or expired undo token")
		return
	}
	h.undos.Remove(req.UndoToken)

	undo.Revert()
	h.l.Infof(ctx, "voice.Undo: reverted %q", undo.Label)

	response.OK(c, gin.H{"reverted": undo.Label})
}

// PeekPending godoc
// @Summary     Peek a domain's pending actions
// @Description Lists queued actions for a domain without draining them.
// @Tags        Pending
// @Produce     json
// @Param       domain path string true "Domain (meals, finances, pets, notes, family)"
// @Success     200 {object} pendingListResp
// @Failure     400 {object} response.Resp "Unknown domain"
// @Router      /api/v1/pending/{domain} [GET]
func (h *handler) PeekPending(c *gin.Context) {
	domain, err := h.processDomainParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newPendingListResp(h.queue.Peek(domain)))
}

// ConsumePending godoc
// @Summary     Consume a domain's pending actions
// @Description Atomically drains and returns every queued action for a domain, in enqueue order.
// @Tags        Pending
// @Produce     json
// @Param       domain path string true "Domain (meals, finances, pets, notes, family)"
// @Success     200 {object} pendingListResp
// @Failure     400 {object} response.Resp "Unknown domain"
// @Router      /api/v1/pending/{domain}/consume [POST]
func (h *handler) ConsumePending(c *gin.Context) {
	ctx := c.Request.Context()

	domain, err := h.processDomainParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	actions := h.queue.Consume(domain)
	h.l.Debugf(ctx, "pending.Consume: %s drained %d actions", domain, len(actions))

	response.OK(c, newPendingListResp(actions))
}

// ListTrace godoc
// @Summary     List routing trace entries
// @Description Returns the debug trace ring, oldest first, plus the capture flag.
// @Tags        Debug
// @Produce     json
// @Success     200 {object} traceListResp
// @Router      /api/v1/debug/trace [GET]
func (h *handler) ListTrace(c *gin.Context) {
	response.OK(c, traceListResp{
		Enabled: h.traces.Enabled(),
		Entries: h.traces.Entries(),
	})
}

// SetTraceEnabled godoc
// @Summary     Toggle trace capture
// @Tags        Debug
// @Accept      json
// @Produce     json
// @Param       body body traceToggleReq true "Capture flag"
// @Success     200 {object} traceEnabledResp
// @Router      /api/v1/debug/trace/enabled [PUT]
func (h *handler) SetTraceEnabled(c *gin.Context) {
	var req traceToggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	h.traces.SetEnabled(req.Enabled)
	response.OK(c, traceEnabledResp{Enabled: h.traces.Enabled()})
}

// ClearTrace godoc
// @Summary     Clear the trace ring
// @Tags        Debug
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/debug/trace [DELETE]
func (h *handler) ClearTrace(c *gin.Context) {
	h.traces.Clear()
	response.OK(c, gin.H{"cleared": true})
}
