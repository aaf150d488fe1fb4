package catalog

// Scoring weights applied uniformly to every intent.
const (
	MatchRuleWeight = 2.0
	KeywordWeight   = 0.32
	ExampleBonus    = 0.9
)

// Context bias applied by the scorer.
const (
	FavoredBoost = 1.2
	FamilyDamp   = 1.8
)

// Destination labels.
const (
	LabelTasks     = "Tasks"
	LabelCalendar  = "Calendar"
	LabelMeals     = "Meals"
	LabelFinances  = "Finances"
	LabelPets      = "Pets"
	LabelNotes     = "Notes & Docs"
	LabelFamilyHub = "Family Hub"
	LabelAISummary = "AI Summary"
	LabelRelay     = "Relay"
)
