package usecase

import (
	"fmt"
	"strings"

	"household-relay/internal/model"
	"household-relay/internal/voice"
)

func (uc *implUseCase) createEvent(interp voice.Interpretation) voice.ExecutionOutcome {
	title := interp.Slots.GetOr(voice.SlotTitle, "New event")
	date := interp.Slots.GetOr(voice.SlotDate, "Today")

	event := model.Event{
		Title:    title,
		Date:     date,
		Time:     interp.Slots.GetOr(voice.SlotTime, ""),
		Location: interp.Slots.GetOr(voice.SlotLocation, ""),
	}
	if iso, ok := uc.dateMath.ResolveISO(date, uc.now()); ok {
		event.DateISO = iso
	}

	added := uc.deps.Events.AddEvent(event)

	detail := added.Date
	if added.Time != "" {
		detail += " at " + added.Time
	}
	return voice.ExecutionOutcome{
		Message: fmt.Sprintf("Added %q to the calendar.", added.Title),
		Detail:  detail,
		Route:   voice.RouteCalendar,
		Explain: "Created a calendar event.",
		Undo: &voice.Undo{
			Label: "Remove " + added.Title,
			Revert: func() {
				uc.deps.Events.DeleteEvent(added.ID)
			},
		},
	}
}

func (uc *implUseCase) deleteEvent(interp voice.Interpretation) voice.ExecutionOutcome {
	ref := interp.Slots.GetOr(voice.SlotEventRef, interp.Slots.GetOr(voice.SlotTitle, ""))
	event, ok := uc.findEvent(ref)
	if !ok {
		return eventNotFound(ref)
	}

	removed, _ := uc.deps.Events.DeleteEvent(event.ID)
	return voice.ExecutionOutcome{
		Message: fmt.Sprintf("Cancelled %q.", removed.Title),
		Route:   voice.RouteCalendar,
		Explain: fmt.Sprintf("Matched %q against the calendar.", ref),
		Undo: &voice.Undo{
			Label: "Restore " + removed.Title,
			Revert: func() {
				uc.deps.Events.AddEvent(removed)
			},
		},
	}
}

func (uc *implUseCase) moveEvent(interp voice.Interpretation) voice.ExecutionOutcome {
	ref := interp.Slots.GetOr(voice.SlotEventRef, interp.Slots.GetOr(voice.SlotTitle, ""))
	event, ok := uc.findEvent(ref)
	if !ok {
		return eventNotFound(ref)
	}

	newDate := interp.Slots.GetOr(voice.SlotDate, "Tomorrow")
	newISO := ""
	if iso, resolved := uc.dateMath.ResolveISO(newDate, uc.now()); resolved {
		newISO = iso
	}
	newTime := interp.Slots.GetOr(voice.SlotTime, event.Time)

	prevDate, prevISO, prevTime := event.Date, event.DateISO, event.Time
	updated, _ := uc.deps.Events.UpdateEvent(event.ID, model.EventPatch{
		Date:    &newDate,
		DateISO: &newISO,
		Time:    &newTime,
	})

	return voice.ExecutionOutcome{
		Message: fmt.Sprintf("Moved %q to %s.", updated.Title, newDate),
		Route:   voice.RouteCalendar,
		Explain: fmt.Sprintf("Matched %q against the calendar.", ref),
		Undo: &voice.Undo{
			Label: "Move back " + updated.Title,
			Revert: func() {
				uc.deps.Events.UpdateEvent(updated.ID, model.EventPatch{
					Date:    &prevDate,
					DateISO: &prevISO,
					Time:    &prevTime,
				})
			},
		},
	}
}

func (uc *implUseCase) findEvent(ref string) (model.Event, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return model.Event{}, false
	}
	for _, e := range uc.deps.Events.Events() {
		title := strings.ToLower(e.Title)
		if title == "" {
			continue
		}
		if strings.Contains(title, ref) || strings.Contains(ref, title) {
			return e, true
		}
	}
	return model.Event{}, false
}

func eventNotFound(ref string) voice.ExecutionOutcome {
	return informational(
		fmt.Sprintf("I couldn't find an event matching %q.", ref),
		"Try the exact event title.",
		"No event title contained the reference phrase.",
	)
}
