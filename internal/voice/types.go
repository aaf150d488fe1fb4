package voice

import (
	"regexp"
	"strings"
)

// Domain groups intents by the household module that owns them.
type Domain string

const (
	DomainTasks    Domain = "tasks"
	DomainCalendar Domain = "calendar"
	DomainMeals    Domain = "meals"
	DomainFinances Domain = "finances"
	DomainPets     Domain = "pets"
	DomainNotes    Domain = "notes"
	DomainFamily   Domain = "family"
	DomainSystem   Domain = "system"
)

// Intent is a named, discrete user goal recognized by the pipeline.
type Intent string

const (
	// Tasks
	IntentCreateTask     Intent = "create_task"
	IntentCompleteTask   Intent = "complete_task"
	IntentDeleteTask     Intent = "delete_task"
	IntentRescheduleTask Intent = "reschedule_task"
	IntentListTasks      Intent = "list_tasks"

	// Calendar
	IntentCreateEvent   Intent = "create_event"
	IntentDeleteEvent   Intent = "delete_event"
	IntentMoveEvent     Intent = "move_event"
	IntentCheckCalendar Intent = "check_calendar"

	// Meals
	IntentPlanMeal          Intent = "plan_meal"
	IntentAddGroceryItem    Intent = "add_grocery_item"
	IntentRemoveGroceryItem Intent = "remove_grocery_item"
	IntentShowMealPlan      Intent = "show_meal_plan"
	IntentSuggestMeal       Intent = "suggest_meal"

	// Finances
	IntentLogExpense   Intent = "log_expense"
	IntentAddBill      Intent = "add_bill"
	IntentMarkBillPaid Intent = "mark_bill_paid"
	IntentShowSpending Intent = "show_spending"
	IntentSetBudget    Intent = "set_budget"

	// Pets
	IntentLogPetFeeding    Intent = "log_pet_feeding"
	IntentLogPetWalk       Intent = "log_pet_walk"
	IntentScheduleVetVisit Intent = "schedule_vet_visit"
	IntentShowPetSchedule  Intent = "show_pet_schedule"

	// Notes
	IntentCreateNote  Intent = "create_note"
	IntentSaveLink    Intent = "save_link"
	IntentSearchNotes Intent = "search_notes"

	// Family
	IntentAddFamilyMember   Intent = "add_family_member"
	IntentAssignChore       Intent = "assign_chore"
	IntentSendFamilyMessage Intent = "send_family_message"
	IntentShowFamilyHub     Intent = "show_family_hub"

	// System
	IntentShowSummary      Intent = "show_summary"
	IntentWhatsNext        Intent = "whats_next"
	IntentSearchEverything Intent = "search_everything"
	IntentOpenScreen       Intent = "open_screen"
	IntentHelp             Intent = "help"
	IntentSmallTalkQnA     Intent = "small_talk_qna"
	IntentUnknown          Intent = "unknown_intent"
)

// Tab is the coarse screen-area classification derived from the pathname,
// used to bias intent scoring toward what the user is looking at.
type Tab string

const (
	TabTasks    Tab = "tasks"
	TabCalendar Tab = "calendar"
	TabMeals    Tab = "meals"
	TabFinances Tab = "finances"
	TabPets     Tab = "pets"
	TabNotes    Tab = "notes"
	TabFamily   Tab = "family"
	TabRelay    Tab = "relay"
)

// MatchRule is one weighted structural pattern of an intent.
// Rules are evaluated uniformly; adding an intent never touches the scorer.
type MatchRule struct {
	Pattern *regexp.Regexp
	Weight  float64
}

// IntentSpec is the immutable specification of one intent.
// Defined once at process start, never mutated.
type IntentSpec struct {
	Name                 Intent
	Domain               Domain
	Description          string
	RequiredSlots        []string
	OptionalSlots        []string
	Examples             []string
	ConfirmationRequired bool
	HandlerDomain        Domain
	MatchRules           []MatchRule
	Keywords             []string
}

// SlotValues maps slot identifiers to extracted strings.
// A missing key means "not found", never an empty string.
type SlotValues map[string]string

// Get returns the value for a slot and whether it was extracted.
func (s SlotValues) Get(slot string) (string, bool) {
	v, ok := s[slot]
	return v, ok
}

// GetOr returns the value for a slot, or fallback when absent.
func (s SlotValues) GetOr(slot, fallback string) string {
	if v, ok := s[slot]; ok {
		return v
	}
	return fallback
}

// Has reports whether a slot was extracted.
func (s SlotValues) Has(slot string) bool {
	_, ok := s[slot]
	return ok
}

// RouteContext describes where in the app the utterance was spoken.
// Supplied fresh on every call; never persisted.
type RouteContext struct {
	Pathname          string
	Tab               Tab
	FamilyModeEnabled bool
	SelectedDate      string // ISO date currently selected in the UI, if any
}

// NewRouteContext builds a RouteContext with the tab derived from pathname.
func NewRouteContext(pathname string, familyMode bool, selectedDate string) RouteContext {
	return RouteContext{
		Pathname:          pathname,
		Tab:               DeriveTab(pathname),
		FamilyModeEnabled: familyMode,
		SelectedDate:      selectedDate,
	}
}

// DeriveTab classifies a pathname into a screen-area tab.
func DeriveTab(pathname string) Tab {
	p := strings.ToLower(pathname)
	switch {
	case strings.HasPrefix(p, "/tasks"), strings.HasPrefix(p, "/chores"):
		return TabTasks
	case strings.HasPrefix(p, "/calendar"):
		return TabCalendar
	case strings.HasPrefix(p, "/meals"), strings.HasPrefix(p, "/grocery"):
		return TabMeals
	case strings.HasPrefix(p, "/finances"), strings.HasPrefix(p, "/budget"):
		return TabFinances
	case strings.HasPrefix(p, "/pets"):
		return TabPets
	case strings.HasPrefix(p, "/notes"), strings.HasPrefix(p, "/docs"):
		return TabNotes
	case strings.HasPrefix(p, "/family"):
		return TabFamily
	default:
		return TabRelay
	}
}

// FollowUp is a clarifying question for one missing required slot,
// with suggested quick-reply chips.
type FollowUp struct {
	Slot     string
	Question string
	Chips    []string
}

// Interpretation is the routing decision for one utterance.
type Interpretation struct {
	Intent               Intent
	Spec                 IntentSpec
	Slots                SlotValues
	MissingSlots         []string
	Confidence           float64 // [0.20, 0.98], rounded to 2 decimals
	Reasoning            string
	RequiresConfirmation bool
	PreviewLines         []string
	DestinationLabel     string
	FollowUp             *FollowUp // present iff MissingSlots is non-empty
}

// Undo is a one-step reversal capability paired with a completed mutation.
type Undo struct {
	Label  string
	Revert func()
}

// ExecutionOutcome is the result of executing a confirmed interpretation.
type ExecutionOutcome struct {
	Message       string
	Detail        string
	Route         string // UI destination hint; empty when no navigation applies
	Explain       string
	Informational bool // true when nothing was mutated
	Undo          *Undo
}
