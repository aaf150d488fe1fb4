package usecase

import (
	"fmt"

	"household-relay/internal/model"
	"household-relay/internal/voice"
	"household-relay/pkg/datemath"
)

// domainRoutes map a deferred domain to the screen the UI should open so the
// pending action is absorbed on mount.
var domainRoutes = map[voice.Domain]string{
	voice.DomainMeals:    voice.RouteMeals,
	voice.DomainFinances: voice.RouteFinances,
	voice.DomainPets:     voice.RoutePets,
	voice.DomainNotes:    voice.RouteNotes,
	voice.DomainFamily:   voice.RouteFamily,
}

// deferToDomain normalizes slots into a flat payload, optionally creates a
// visible task/event stub, enqueues the pending action and navigates to the
// owning screen. Deferred intents mutate, so informational stays false, but
// reversal belongs to the consuming domain, so no undo is offered.
func (uc *implUseCase) deferToDomain(interp voice.Interpretation) voice.ExecutionOutcome {
	slots := interp.Slots
	dayISO := uc.resolveDayISO(slots.GetOr(voice.SlotDate, ""))

	var (
		payload map[string]any
		message string
	)

	switch interp.Intent {
	case voice.IntentPlanMeal:
		title := slots.GetOr(voice.SlotTitle, "Planned meal")
		slotType := slots.GetOr(voice.SlotMealType, "Dinner")
		payload = map[string]any{"title": title, "dayISO": dayISO, "slotType": slotType}
		message = fmt.Sprintf("Planned %s for %s.", title, slotType)
		uc.deps.Events.AddEvent(model.Event{
			Title:   slotType + ": " + title,
			Date:    slots.GetOr(voice.SlotDate, "Today"),
			DateISO: dayISO,
		})

	case voice.IntentAddGroceryItem:
		item := slots.GetOr(voice.SlotItem, "Item")
		payload = map[string]any{"item": item}
		message = fmt.Sprintf("Added %s to the grocery list.", item)

	case voice.IntentRemoveGroceryItem:
		item := slots.GetOr(voice.SlotItem, "Item")
		payload = map[string]any{"item": item}
		message = fmt.Sprintf("Removed %s from the grocery list.", item)

	case voice.IntentLogExpense:
		amount := slots.GetOr(voice.SlotAmount, "$0")
		category := slots.GetOr(voice.SlotCategory, "General")
		payload = map[string]any{"amount": amount, "category": category, "dayISO": dayISO}
		message = fmt.Sprintf("Logged %s under %s.", amount, category)

	case voice.IntentAddBill:
		title := slots.GetOr(voice.SlotTitle, "New bill")
		payload = map[string]any{"title": title, "amount": slots.GetOr(voice.SlotAmount, ""), "dueDateISO": dayISO}
		message = fmt.Sprintf("Added the %s.", title)
		uc.deps.Tasks.AddTask(model.Task{
			Title:      "Pay " + title,
			DueDate:    slots.GetOr(voice.SlotDate, ""),
			DueDateISO: dayISO,
		})

	case voice.IntentMarkBillPaid:
		title := slots.GetOr(voice.SlotTitle, "bill")
		payload = map[string]any{"title": title}
		message = fmt.Sprintf("Marked the %s as paid.", title)

	case voice.IntentSetBudget:
		amount := slots.GetOr(voice.SlotAmount, "$0")
		category := slots.GetOr(voice.SlotCategory, "General")
		payload = map[string]any{"amount": amount, "category": category}
		message = fmt.Sprintf("Set the %s budget to %s.", category, amount)

	case voice.IntentLogPetFeeding:
		pet := slots.GetOr(voice.SlotPet, "your pet")
		payload = map[string]any{"pet": pet, "time": slots.GetOr(voice.SlotTime, ""), "dayISO": dayISO}
		message = fmt.Sprintf("Logged a feeding for %s.", pet)

	case voice.IntentLogPetWalk:
		pet := slots.GetOr(voice.SlotPet, "your pet")
		payload = map[string]any{"pet": pet, "time": slots.GetOr(voice.SlotTime, ""), "dayISO": dayISO}
		message = fmt.Sprintf("Logged a walk for %s.", pet)

	case voice.IntentScheduleVetVisit:
		pet := slots.GetOr(voice.SlotPet, "your pet")
		reason := slots.GetOr(voice.SlotReason, "Routine check")
		payload = map[string]any{"pet": pet, "reason": reason, "dayISO": dayISO}
		message = fmt.Sprintf("Scheduled a vet visit for %s.", pet)
		uc.deps.Events.AddEvent(model.Event{
			Title:   "Vet visit: " + pet,
			Date:    slots.GetOr(voice.SlotDate, "Today"),
			DateISO: dayISO,
			Time:    slots.GetOr(voice.SlotTime, ""),
		})

	case voice.IntentCreateNote:
		title := slots.GetOr(voice.SlotTitle, "New note")
		payload = map[string]any{"title": title}
		message = "Saved your note."

	case voice.IntentSaveLink:
		url := slots.GetOr(voice.SlotURL, "")
		payload = map[string]any{"url": url, "title": slots.GetOr(voice.SlotTitle, "")}
		message = "Saved the link."

	case voice.IntentAddFamilyMember:
		member := slots.GetOr(voice.SlotMember, "New member")
		payload = map[string]any{"memberName": member}
		message = fmt.Sprintf("Added %s to the family hub.", member)

	case voice.IntentAssignChore:
		member := slots.GetOr(voice.SlotMember, "someone")
		title := slots.GetOr(voice.SlotTitle, "New chore")
		payload = map[string]any{"memberName": member, "title": title, "dueDateISO": dayISO}
		message = fmt.Sprintf("Assigned %q to %s.", title, member)
		uc.deps.Tasks.AddTask(model.Task{
			Title:      title,
			Assignee:   member,
			DueDate:    slots.GetOr(voice.SlotDate, ""),
			DueDateISO: dayISO,
		})

	case voice.IntentSendFamilyMessage:
		member := slots.GetOr(voice.SlotMember, "everyone")
		text := slots.GetOr(voice.SlotTitle, "")
		payload = map[string]any{"memberName": member, "text": text}
		message = fmt.Sprintf("Message for %s queued.", member)

	default:
		payload = map[string]any{}
		message = "Action queued."
	}

	domain := interp.Spec.HandlerDomain
	uc.queue.Enqueue(domain, string(interp.Intent), payload)

	route := domainRoutes[domain]
	if route == "" {
		route = voice.RouteRelay
	}
	if uc.deps.Navigate != nil {
		uc.deps.Navigate(route)
	}

	return voice.ExecutionOutcome{
		Message: message,
		Detail:  fmt.Sprintf("The %s screen picks this up when it opens.", domain),
		Route:   route,
		Explain: fmt.Sprintf("Queued a %s action for the %s screen.", interp.Intent, domain),
	}
}

// resolveDayISO canonicalizes a display date. An empty or unparseable phrase
// resolves to the current day.
func (uc *implUseCase) resolveDayISO(date string) string {
	now := uc.now()
	if date != "" {
		if iso, ok := uc.dateMath.ResolveISO(date, now); ok {
			return iso
		}
	}
	return now.Format(datemath.FormatISO)
}
