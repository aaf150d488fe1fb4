package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"household-relay/internal/followup"
	"household-relay/internal/slots"
	"household-relay/internal/trace"
	"household-relay/internal/voice"
	"household-relay/internal/voice/catalog"
)

// lowConfidenceCeiling is the boosted top score at or below which the
// ranking is discarded in favor of the fallback resolver.
const lowConfidenceCeiling = 0.45

// confidenceDivisor maps a boosted score onto the confidence range.
const confidenceDivisor = 4.2

// Route maps a free-text utterance plus screen context to a slot-filled
// interpretation. Total: every input resolves, worst case to unknown_intent.
func (uc *implUseCase) Route(ctx context.Context, text string, rc voice.RouteContext) voice.Interpretation {
	started := uc.now()

	raw := scoreAll(text)
	boosted := applyBias(raw, rc)
	ranked := rank(boosted)

	var (
		chosen     voice.Intent
		confidence float64
		reasoning  string
		fellBack   bool
	)

	top := ranked[0]
	topScore := boosted[top]
	if topScore <= lowConfidenceCeiling {
		fellBack = true
		intent, specific := resolveFallback(text, rc)
		chosen = intent
		if specific {
			confidence = fallbackSpecificConfidence
			reasoning = fmt.Sprintf("no strong match (top score %.2f); fallback heuristics chose %s on tab %s", topScore, intent, rc.Tab)
		} else {
			confidence = fallbackUnknownConfidence
			reasoning = fmt.Sprintf("no strong match (top score %.2f) and no applicable heuristic on tab %s", topScore, rc.Tab)
		}
	} else {
		chosen = top
		confidence = round2(math.Min(0.98, math.Max(0.20, topScore/confidenceDivisor)))
		reasoning = fmt.Sprintf("matched %s with score %.2f on tab %s", chosen, topScore, rc.Tab)
	}

	spec, ok := catalog.Get(chosen)
	if !ok {
		spec = catalog.Unknown()
	}

	extracted := slots.Extract(chosen, text)

	var missing []string
	for _, required := range spec.RequiredSlots {
		if !extracted.Has(required) {
			missing = append(missing, required)
		}
	}

	var fu *voice.FollowUp
	if len(missing) > 0 {
		resolved := followup.Resolve(chosen, missing[0])
		fu = &resolved
	}

	interp := voice.Interpretation{
		Intent:               chosen,
		Spec:                 spec,
		Slots:                extracted,
		MissingSlots:         missing,
		Confidence:           confidence,
		Reasoning:            reasoning,
		RequiresConfirmation: spec.ConfirmationRequired,
		PreviewLines:         previewLines(spec, extracted),
		DestinationLabel:     catalog.DestinationLabel(chosen),
		FollowUp:             fu,
	}

	uc.l.Debugf(ctx, "voice.Route: %q -> %s (confidence %.2f, fallback %t)", text, chosen, confidence, fellBack)
	uc.recordTrace(text, rc, interp, boosted, ranked, fellBack, started)

	return interp
}

func (uc *implUseCase) recordTrace(text string, rc voice.RouteContext, interp voice.Interpretation, boosted map[voice.Intent]float64, ranked []voice.Intent, fellBack bool, started time.Time) {
	scores := make([]trace.IntentScore, 0, traceScoreRows)
	for _, intent := range ranked {
		if boosted[intent] <= 0 || len(scores) == traceScoreRows {
			break
		}
		scores = append(scores, trace.IntentScore{Intent: string(intent), Score: round2(boosted[intent])})
	}

	slotCopy := make(map[string]string, len(interp.Slots))
	for k, v := range interp.Slots {
		slotCopy[k] = v
	}

	uc.traces.Record(trace.Entry{
		Transcript:           text,
		Tab:                  string(rc.Tab),
		Intent:               string(interp.Intent),
		HandlerDomain:        string(interp.Spec.HandlerDomain),
		Confidence:           interp.Confidence,
		RequiresConfirmation: interp.RequiresConfirmation,
		Scores:               scores,
		Slots:                slotCopy,
		Missing:              interp.MissingSlots,
		Reasoning:            interp.Reasoning,
		Fallback:             fellBack,
		LatencyMS:            uc.now().Sub(started).Milliseconds(),
	})
}

// traceScoreRows caps how many score rows one trace entry carries.
const traceScoreRows = 8

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
