package slots

import (
	"regexp"

	"household-relay/internal/voice"
)

var (
	calendarAddRe = regexp.MustCompile(`(?i)^add\s+(.+?)\s+to\s+(?:the\s+|my\s+)?calendar\b`)
	billNameRe    = regexp.MustCompile(`(?i)\b(?:the|my|a)\s+([a-z]+(?:\s[a-z]+)?)\s+bill\b`)
	paidRe        = regexp.MustCompile(`(?i)\bpaid\s+(?:the\s+|my\s+)?([a-z]+(?:\s[a-z]+)?)$`)
	addFamilyRe   = regexp.MustCompile(`(?i)\badd\s+([a-z]+)\s+to\s+(?:the\s+|our\s+)?family\b`)
)

// normalize fills intent-specific derived defaults after generic extraction.
// It only ever adds slots, never removes or rewrites an extracted value.
func normalize(intent voice.Intent, text string, out voice.SlotValues) {
	switch intent {
	case voice.IntentCreateTask, voice.IntentCreateNote:
		// Whole cleaned utterance as a last-resort title.
		if !out.Has(voice.SlotTitle) {
			setNonEmpty(out, voice.SlotTitle, stripTrailingDateTime(text))
		}

	case voice.IntentCompleteTask, voice.IntentDeleteTask, voice.IntentRescheduleTask:
		if !out.Has(voice.SlotTaskRef) {
			setNonEmpty(out, voice.SlotTaskRef, out.GetOr(voice.SlotTitle, ""))
		}

	case voice.IntentCreateEvent:
		if !out.Has(voice.SlotTitle) {
			if m := calendarAddRe.FindStringSubmatch(text); m != nil {
				setNonEmpty(out, voice.SlotTitle, stripTrailingDateTime(m[1]))
			}
		}
		if !out.Has(voice.SlotTitle) {
			setNonEmpty(out, voice.SlotTitle, stripTrailingDateTime(text))
		}

	case voice.IntentDeleteEvent, voice.IntentMoveEvent:
		if !out.Has(voice.SlotEventRef) {
			setNonEmpty(out, voice.SlotEventRef, out.GetOr(voice.SlotTitle, ""))
		}

	case voice.IntentScheduleVetVisit:
		if !out.Has(voice.SlotReason) {
			out[voice.SlotReason] = "Routine check"
		}

	case voice.IntentAddBill, voice.IntentMarkBillPaid:
		if !out.Has(voice.SlotTitle) {
			if m := billNameRe.FindStringSubmatch(text); m != nil {
				out[voice.SlotTitle] = m[1] + " bill"
			} else if m := paidRe.FindStringSubmatch(text); m != nil {
				out[voice.SlotTitle] = m[1]
			}
		}

	case voice.IntentAddFamilyMember, voice.IntentAssignChore, voice.IntentSendFamilyMessage:
		if !out.Has(voice.SlotMember) {
			if m := addFamilyRe.FindStringSubmatch(text); m != nil {
				out[voice.SlotMember] = capitalize(m[1])
			} else if person, ok := out.Get(voice.SlotPerson); ok {
				out[voice.SlotMember] = person
			}
		}

	case voice.IntentSearchNotes, voice.IntentSearchEverything:
		if !out.Has(voice.SlotQuery) {
			setNonEmpty(out, voice.SlotQuery, stripTrailingDateTime(text))
		}

	case voice.IntentSmallTalkQnA:
		// The responder keys its reply off the utterance itself.
		setNonEmpty(out, voice.SlotQuery, text)
	}
}

func setNonEmpty(out voice.SlotValues, slot, value string) {
	if value != "" {
		out[slot] = value
	}
}
