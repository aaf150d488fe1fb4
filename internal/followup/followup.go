package followup

import (
	"household-relay/internal/voice"
)

// prompt is a curated question plus quick-reply chips for one missing slot.
type prompt struct {
	question string
	chips    []string
}

// curated holds hand-written prompts for the (intent, slot) pairs users hit
// most often. Anything not listed falls through to the generic prompt.
var curated = map[voice.Intent]map[string]prompt{
	voice.IntentCreateTask: {
		voice.SlotTitle: {"What should the task say?", []string{"Call the plumber", "Buy a gift", "Pay the water bill"}},
	},
	voice.IntentRescheduleTask: {
		voice.SlotTaskRef: {"Which task should I move?", []string{"The most recent one", "Laundry", "Dentist"}},
		voice.SlotDate:    {"When should it happen instead?", []string{"Tomorrow", "This weekend", "Next week"}},
	},
	voice.IntentCompleteTask: {
		voice.SlotTaskRef: {"Which task did you finish?", []string{"The most recent one", "Laundry", "Dishes"}},
	},
	voice.IntentDeleteTask: {
		voice.SlotTaskRef: {"Which task should I delete?", []string{"The most recent one", "Laundry", "Dentist"}},
	},
	voice.IntentCreateEvent: {
		voice.SlotTitle: {"What is the event called?", []string{"Dentist appointment", "Soccer practice", "Date night"}},
		voice.SlotDate:  {"What day is it on?", []string{"Today", "Tomorrow", "This weekend"}},
	},
	voice.IntentMoveEvent: {
		voice.SlotEventRef: {"Which event should I move?", []string{"The next one", "Dentist", "Soccer practice"}},
		voice.SlotDate:     {"When should it move to?", []string{"Tomorrow", "Next week", "Friday"}},
	},
	voice.IntentDeleteEvent: {
		voice.SlotEventRef: {"Which event should I cancel?", []string{"The next one", "Dentist", "Soccer practice"}},
	},
	voice.IntentAddGroceryItem: {
		voice.SlotItem: {"What should I add to the list?", []string{"Milk", "Eggs", "Bread"}},
	},
	voice.IntentRemoveGroceryItem: {
		voice.SlotItem: {"What should I take off the list?", []string{"Milk", "Eggs", "Bread"}},
	},
	voice.IntentPlanMeal: {
		voice.SlotTitle: {"What are you making?", []string{"Tacos", "Pasta", "Stir fry"}},
	},
	voice.IntentLogExpense: {
		voice.SlotAmount: {"How much was it?", []string{"$10", "$25", "$50"}},
	},
	voice.IntentAddBill: {
		voice.SlotTitle: {"Which bill is it?", []string{"Electric bill", "Internet bill", "Rent"}},
	},
	voice.IntentMarkBillPaid: {
		voice.SlotTitle: {"Which bill did you pay?", []string{"Electric bill", "Internet bill", "Rent"}},
	},
	voice.IntentScheduleVetVisit: {
		voice.SlotPet: {"Which pet is this for?", []string{"The dog", "The cat", "All of them"}},
	},
	voice.IntentLogPetFeeding: {
		voice.SlotPet: {"Which pet did you feed?", []string{"The dog", "The cat", "All of them"}},
	},
	voice.IntentAssignChore: {
		voice.SlotTitle:  {"Which chore is it?", []string{"Dishes", "Trash", "Vacuuming"}},
		voice.SlotMember: {"Who should do it?", []string{"Mom", "Dad", "The kids"}},
	},
	voice.IntentSendFamilyMessage: {
		voice.SlotMember: {"Who should I send it to?", []string{"Mom", "Dad", "Everyone"}},
		voice.SlotTitle:  {"What should the message say?", []string{"Dinner is ready", "Running late", "Call me"}},
	},
	voice.IntentAddFamilyMember: {
		voice.SlotMember: {"What is their name?", []string{"Grandma", "Grandpa", "A friend"}},
	},
	voice.IntentCreateNote: {
		voice.SlotTitle: {"What should the note say?", []string{"Wifi password", "Gift ideas", "Garage code"}},
	},
	voice.IntentSaveLink: {
		voice.SlotURL: {"Paste or dictate the link.", []string{"From my clipboard", "Never mind", "Help"}},
	},
	voice.IntentSearchNotes: {
		voice.SlotQuery: {"What should I search your notes for?", []string{"Wifi", "Recipes", "School"}},
	},
	voice.IntentSearchEverything: {
		voice.SlotQuery: {"What should I search for?", []string{"Tasks", "Events", "Notes"}},
	},
	voice.IntentOpenScreen: {
		voice.SlotScreen: {"Which screen should I open?", []string{"Tasks", "Calendar", "Meals"}},
	},
}

// dateChips cover the generic prompt for any date-shaped slot.
var dateChips = []string{"Today", "Tomorrow", "Next week"}

func isDateSlot(slot string) bool {
	return slot == voice.SlotDate || slot == voice.SlotTime || slot == voice.SlotRange
}

// Resolve returns the follow-up question for the first missing slot of an
// intent. The caller decides whether a follow-up is warranted at all; Resolve
// never returns a zero FollowUp for a non-empty slot name.
func Resolve(intent voice.Intent, slot string) voice.FollowUp {
	if bySlot, ok := curated[intent]; ok {
		if p, ok := bySlot[slot]; ok {
			return voice.FollowUp{Slot: slot, Question: p.question, Chips: p.chips}
		}
	}
	chips := []string{"Never mind", "Help", "Try again"}
	if isDateSlot(slot) {
		chips = dateChips
	}
	return voice.FollowUp{
		Slot:     slot,
		Question: "I need one more detail: " + slot + ".",
		Chips:    chips,
	}
}
