package usecase

import (
	"strings"

	"household-relay/internal/voice"
)

const (
	fallbackSpecificConfidence = 0.65
	fallbackUnknownConfidence  = 0.20
)

// fallbackHeuristic is one ordered low-confidence rescue rule. An empty tab
// matches any context; all listed words must appear in the lowercase text.
type fallbackHeuristic struct {
	tab    voice.Tab
	words  []string
	intent voice.Intent
}

// fallbackHeuristics rescue utterances the scorer could not rank. Order
// matters; the first hit wins.
var fallbackHeuristics = []fallbackHeuristic{
	{"", []string{"delete", "task"}, voice.IntentDeleteTask},
	{"", []string{"remove", "task"}, voice.IntentDeleteTask},
	{voice.TabMeals, []string{"grocery"}, voice.IntentAddGroceryItem},
	{voice.TabMeals, []string{"list"}, voice.IntentAddGroceryItem},
	{voice.TabFinances, []string{"spent"}, voice.IntentLogExpense},
	{voice.TabFinances, []string{"paid"}, voice.IntentMarkBillPaid},
	{voice.TabPets, []string{"vet"}, voice.IntentScheduleVetVisit},
	{voice.TabPets, []string{"fed"}, voice.IntentLogPetFeeding},
	{voice.TabCalendar, []string{"today"}, voice.IntentCheckCalendar},
	{"", []string{"remind"}, voice.IntentCreateTask},
}

// tabDefaults map a screen to its most likely intent when nothing else
// matched at all.
var tabDefaults = map[voice.Tab]voice.Intent{
	voice.TabTasks:    voice.IntentCreateTask,
	voice.TabCalendar: voice.IntentCheckCalendar,
	voice.TabMeals:    voice.IntentShowMealPlan,
	voice.TabFinances: voice.IntentShowSpending,
	voice.TabPets:     voice.IntentShowPetSchedule,
	voice.TabNotes:    voice.IntentCreateNote,
	voice.TabFamily:   voice.IntentShowFamilyHub,
}

// resolveFallback picks an intent for a low-confidence utterance. The bool
// reports whether a specific intent (heuristic or tab default) was found;
// false means unknown_intent.
func resolveFallback(text string, rc voice.RouteContext) (voice.Intent, bool) {
	lower := strings.ToLower(text)

	for _, h := range fallbackHeuristics {
		if h.tab != "" && h.tab != rc.Tab {
			continue
		}
		hit := true
		for _, w := range h.words {
			if !strings.Contains(lower, w) {
				hit = false
				break
			}
		}
		if hit {
			return h.intent, true
		}
	}

	if intent, ok := tabDefaults[rc.Tab]; ok {
		return intent, true
	}
	return voice.IntentUnknown, false
}
