package http

import (
	"household-relay/internal/pending"
	"household-relay/internal/trace"
	"household-relay/internal/voice"
	"household-relay/pkg/response"
)

type followUpResp struct {
	Slot     string   `json:"slot"`
	Question string   `json:"question"`
	Chips    []string `json:"chips"`
}

type interpretationResp struct {
	Intent               string            `json:"intent"`
	Domain               string            `json:"domain"`
	Slots                map[string]string `json:"slots"`
	MissingSlots         []string          `json:"missingSlots"`
	Confidence           float64           `json:"confidence"`
	Reasoning            string            `json:"reasoning"`
	RequiresConfirmation bool              `json:"requiresConfirmation"`
	PreviewLines         []string          `json:"previewLines"`
	DestinationLabel     string            `json:"destinationLabel"`
	FollowUp             *followUpResp     `json:"followUp,omitempty"`
}

func newInterpretationResp(interp voice.Interpretation) interpretationResp {
	resp := interpretationResp{
		Intent:               string(interp.Intent),
		Domain:               string(interp.Spec.Domain),
		Slots:                interp.Slots,
		MissingSlots:         interp.MissingSlots,
		Confidence:           interp.Confidence,
		Reasoning:            interp.Reasoning,
		RequiresConfirmation: interp.RequiresConfirmation,
		PreviewLines:         interp.PreviewLines,
		DestinationLabel:     interp.DestinationLabel,
	}
	if resp.Slots == nil {
		resp.Slots = map[string]string{}
	}
	if resp.MissingSlots == nil {
		resp.MissingSlots = []string{}
	}
	if interp.FollowUp != nil {
		resp.FollowUp = &followUpResp{
			Slot:     interp.FollowUp.Slot,
			Question: interp.FollowUp.Question,
			Chips:    interp.FollowUp.Chips,
		}
	}
	return resp
}

type outcomeResp struct {
	Message       string `json:"message"`
	Detail        string `json:"detail,omitempty"`
	Route         string `json:"route,omitempty"`
	Explain       string `json:"explain,omitempty"`
	Informational bool   `json:"informational"`
	UndoToken     string `json:"undoToken,omitempty"`
	UndoLabel     string `json:"undoLabel,omitempty"`
}

func newOutcomeResp(out voice.ExecutionOutcome, undoToken string) outcomeResp {
	resp := outcomeResp{
		Message:       out.Message,
		Detail:        out.Detail,
		Route:         out.Route,
		Explain:       out.Explain,
		Informational: out.Informational,
	}
	if out.Undo != nil {
		resp.UndoToken = undoToken
		resp.UndoLabel = out.Undo.Label
	}
	return resp
}

type pendingActionResp struct {
	ID        string            `json:"id"`
	Domain    string            `json:"domain"`
	Type      string            `json:"type"`
	Payload   map[string]any    `json:"payload"`
	CreatedAt response.DateTime `json:"createdAt"`
}

type pendingListResp struct {
	Actions []pendingActionResp `json:"actions"`
}

func newPendingListResp(actions []pending.Action) pendingListResp {
	out := pendingListResp{Actions: make([]pendingActionResp, 0, len(actions))}
	for _, a := range actions {
		out.Actions = append(out.Actions, pendingActionResp{
			ID:        a.ID,
			Domain:    string(a.Domain),
			Type:      a.Type,
			Payload:   a.Payload,
			CreatedAt: response.DateTime(a.CreatedAt),
		})
	}
	return out
}

type traceListResp struct {
	Enabled bool          `json:"enabled"`
	Entries []trace.Entry `json:"entries"`
}

type traceEnabledResp struct {
	Enabled bool `json:"enabled"`
}
