package catalog

import "household-relay/internal/voice"

// favoredByTab biases scoring toward the intents a user on that screen is
// most likely to mean. The family list doubles as the damp list when family
// mode is off.
var favoredByTab = map[voice.Tab][]voice.Intent{
	voice.TabTasks: {
		voice.IntentCreateTask,
		voice.IntentCompleteTask,
		voice.IntentDeleteTask,
		voice.IntentRescheduleTask,
		voice.IntentListTasks,
	},
	voice.TabCalendar: {
		voice.IntentCreateEvent,
		voice.IntentCheckCalendar,
		voice.IntentMoveEvent,
		voice.IntentWhatsNext,
	},
	voice.TabMeals: {
		voice.IntentPlanMeal,
		voice.IntentAddGroceryItem,
		voice.IntentShowMealPlan,
		voice.IntentSuggestMeal,
	},
	voice.TabFinances: {
		voice.IntentLogExpense,
		voice.IntentAddBill,
		voice.IntentShowSpending,
		voice.IntentSetBudget,
	},
	voice.TabPets: {
		voice.IntentLogPetFeeding,
		voice.IntentLogPetWalk,
		voice.IntentScheduleVetVisit,
		voice.IntentShowPetSchedule,
	},
	voice.TabNotes: {
		voice.IntentCreateNote,
		voice.IntentSaveLink,
		voice.IntentSearchNotes,
	},
	voice.TabFamily: {
		voice.IntentAddFamilyMember,
		voice.IntentAssignChore,
		voice.IntentSendFamilyMessage,
		voice.IntentShowFamilyHub,
	},
	voice.TabRelay: {
		voice.IntentShowSummary,
		voice.IntentWhatsNext,
		voice.IntentSearchEverything,
	},
}

var destinationLabels = map[voice.Intent]string{
	voice.IntentCreateTask:     LabelTasks,
	voice.IntentCompleteTask:   LabelTasks,
	voice.IntentDeleteTask:     LabelTasks,
	voice.IntentRescheduleTask: LabelTasks,
	voice.IntentListTasks:      LabelTasks,

	voice.IntentCreateEvent:   LabelCalendar,
	voice.IntentDeleteEvent:   LabelCalendar,
	voice.IntentMoveEvent:     LabelCalendar,
	voice.IntentCheckCalendar: LabelCalendar,
	voice.IntentWhatsNext:     LabelCalendar,

	voice.IntentPlanMeal:          LabelMeals,
	voice.IntentAddGroceryItem:    LabelMeals,
	voice.IntentRemoveGroceryItem: LabelMeals,
	voice.IntentShowMealPlan:      LabelMeals,
	voice.IntentSuggestMeal:       LabelMeals,

	voice.IntentLogExpense:   LabelFinances,
	voice.IntentAddBill:      LabelFinances,
	voice.IntentMarkBillPaid: LabelFinances,
	voice.IntentShowSpending: LabelFinances,
	voice.IntentSetBudget:    LabelFinances,

	voice.IntentLogPetFeeding:    LabelPets,
	voice.IntentLogPetWalk:       LabelPets,
	voice.IntentScheduleVetVisit: LabelPets,
	voice.IntentShowPetSchedule:  LabelPets,

	voice.IntentCreateNote:  LabelNotes,
	voice.IntentSaveLink:    LabelNotes,
	voice.IntentSearchNotes: LabelNotes,

	voice.IntentAddFamilyMember:   LabelFamilyHub,
	voice.IntentAssignChore:       LabelFamilyHub,
	voice.IntentSendFamilyMessage: LabelFamilyHub,
	voice.IntentShowFamilyHub:     LabelFamilyHub,

	voice.IntentShowSummary: LabelAISummary,
}

// previewFallbacks supplies the canned preview line for intents whose
// interpretations usually carry no high-value slots.
var previewFallbacks = map[voice.Intent]string{
	voice.IntentListTasks:        "Open task list",
	voice.IntentCheckCalendar:    "Calendar overview",
	voice.IntentShowMealPlan:     "This week's meal plan",
	voice.IntentSuggestMeal:      "Meal ideas",
	voice.IntentShowSpending:     "Spending overview",
	voice.IntentShowPetSchedule:  "Pet care schedule",
	voice.IntentShowFamilyHub:    "Family hub overview",
	voice.IntentShowSummary:      "Daily household summary",
	voice.IntentWhatsNext:        "Next upcoming items",
	voice.IntentSearchEverything: "Search results",
	voice.IntentSearchNotes:      "Note search results",
	voice.IntentOpenScreen:       "Navigation",
	voice.IntentHelp:             "Help & tips",
	voice.IntentSmallTalkQnA:     "Conversational response",
	voice.IntentUnknown:          "No matching action",
}
