package usecase

import (
	"context"

	"household-relay/internal/voice"
)

// Execute carries out a confirmed interpretation. Every branch is total:
// absent slots fall back to stated defaults, unresolvable references come
// back as informational outcomes, never as errors.
func (uc *implUseCase) Execute(ctx context.Context, interp voice.Interpretation) voice.ExecutionOutcome {
	uc.l.Debugf(ctx, "voice.Execute: %s", interp.Intent)

	var out voice.ExecutionOutcome
	switch interp.Intent {
	// Directly-mutating task intents.
	case voice.IntentCreateTask:
		out = uc.createTask(interp)
	case voice.IntentCompleteTask:
		out = uc.completeTask(interp)
	case voice.IntentDeleteTask:
		out = uc.deleteTask(interp)
	case voice.IntentRescheduleTask:
		out = uc.rescheduleTask(interp)

	// Directly-mutating event intents.
	case voice.IntentCreateEvent:
		out = uc.createEvent(interp)
	case voice.IntentDeleteEvent:
		out = uc.deleteEvent(interp)
	case voice.IntentMoveEvent:
		out = uc.moveEvent(interp)

	// Deferred-domain intents.
	case voice.IntentPlanMeal, voice.IntentAddGroceryItem, voice.IntentRemoveGroceryItem,
		voice.IntentLogExpense, voice.IntentAddBill, voice.IntentMarkBillPaid, voice.IntentSetBudget,
		voice.IntentLogPetFeeding, voice.IntentLogPetWalk, voice.IntentScheduleVetVisit,
		voice.IntentCreateNote, voice.IntentSaveLink,
		voice.IntentAddFamilyMember, voice.IntentAssignChore, voice.IntentSendFamilyMessage:
		out = uc.deferToDomain(interp)

	// Informational intents.
	case voice.IntentListTasks:
		out = uc.listTasks()
	case voice.IntentCheckCalendar:
		out = uc.checkCalendar(interp)
	case voice.IntentShowMealPlan:
		out = uc.showScreen("Here is the meal plan.", voice.RouteMeals)
	case voice.IntentSuggestMeal:
		out = uc.suggestMeal()
	case voice.IntentShowSpending:
		out = uc.showScreen("Here is this month's spending.", voice.RouteFinances)
	case voice.IntentShowPetSchedule:
		out = uc.showScreen("Here is the pet schedule.", voice.RoutePets)
	case voice.IntentShowFamilyHub:
		out = uc.showScreen("Here is the family hub.", voice.RouteFamily)
	case voice.IntentShowSummary:
		out = uc.showSummary()
	case voice.IntentWhatsNext:
		out = uc.whatsNext()
	case voice.IntentSearchNotes, voice.IntentSearchEverything:
		out = uc.search(interp)
	case voice.IntentOpenScreen:
		out = uc.openScreen(interp)
	case voice.IntentHelp:
		out = uc.help()
	case voice.IntentSmallTalkQnA:
		out = uc.smallTalk(interp)
	default:
		out = uc.unknown()
	}
	return out
}

// informational builds a read-only outcome.
func informational(message, detail, explain string) voice.ExecutionOutcome {
	return voice.ExecutionOutcome{
		Message:       message,
		Detail:        detail,
		Explain:       explain,
		Informational: true,
	}
}
