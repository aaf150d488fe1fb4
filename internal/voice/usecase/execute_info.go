package usecase

import (
	"fmt"
	"strings"

	"household-relay/internal/voice"
	"household-relay/pkg/datemath"
)

func (uc *implUseCase) showScreen(message, route string) voice.ExecutionOutcome {
	out := informational(message, "", "Read-only navigation hint.")
	out.Route = route
	return out
}

func (uc *implUseCase) showSummary() voice.ExecutionOutcome {
	tasks := uc.deps.Tasks.Tasks()
	open := 0
	for _, t := range tasks {
		if !t.Completed {
			open++
		}
	}
	events := uc.deps.Events.Events()
	todayISO := uc.now().Format(datemath.FormatISO)
	today := 0
	for _, e := range events {
		if e.DateISO == todayISO {
			today++
		}
	}

	out := informational(
		fmt.Sprintf("%d open tasks, %d events today.", open, today),
		fmt.Sprintf("%d events on the calendar overall.", len(events)),
		"Counted tasks and events across the household.",
	)
	out.Route = voice.RouteRelay
	return out
}

func (uc *implUseCase) whatsNext() voice.ExecutionOutcome {
	todayISO := uc.now().Format(datemath.FormatISO)

	// Nearest dated event today or later, falling back to the oldest open task.
	var nextTitle, nextWhen string
	for _, e := range uc.deps.Events.Events() {
		if e.DateISO == "" || e.DateISO < todayISO {
			continue
		}
		if nextWhen == "" || e.DateISO < nextWhen {
			nextTitle, nextWhen = e.Title, e.DateISO
		}
	}
	if nextTitle != "" {
		out := informational(
			fmt.Sprintf("Next up: %s on %s.", nextTitle, nextWhen),
			"",
			"Picked the nearest upcoming calendar event.",
		)
		out.Route = voice.RouteCalendar
		return out
	}

	for _, t := range uc.deps.Tasks.Tasks() {
		if !t.Completed {
			out := informational(
				fmt.Sprintf("Nothing on the calendar. Oldest open task: %q.", t.Title),
				"",
				"No upcoming events; fell back to the task list.",
			)
			out.Route = voice.RouteTasks
			return out
		}
	}

	return informational("You're all caught up.", "", "No upcoming events and no open tasks.")
}

func (uc *implUseCase) checkCalendar(interp voice.Interpretation) voice.ExecutionOutcome {
	date := interp.Slots.GetOr(voice.SlotDate, "Today")
	dayISO := uc.resolveDayISO(date)

	var titles []string
	for _, e := range uc.deps.Events.Events() {
		if e.DateISO == dayISO {
			titles = append(titles, e.Title)
		}
	}

	message := fmt.Sprintf("Nothing on the calendar for %s.", strings.ToLower(date))
	if len(titles) > 0 {
		message = fmt.Sprintf("%s: %s.", date, strings.Join(titles, ", "))
	}
	out := informational(message, "", fmt.Sprintf("Listed events dated %s.", dayISO))
	out.Route = voice.RouteCalendar
	return out
}

// suggestMeal rotates through a small fixed list keyed on the day so the
// suggestion changes daily without any stored state.
func (uc *implUseCase) suggestMeal() voice.ExecutionOutcome {
	suggestions := []string{"Tacos", "Stir fry", "Pasta night", "Sheet-pan chicken", "Homemade pizza", "Soup and bread", "Breakfast for dinner"}
	pick := suggestions[uc.now().YearDay()%len(suggestions)]

	out := informational(
		fmt.Sprintf("How about %s?", strings.ToLower(pick)),
		"Say \"plan it\" to put it on the meal plan.",
		"Rotated through the standing suggestion list.",
	)
	out.Route = voice.RouteMeals
	return out
}

func (uc *implUseCase) search(interp voice.Interpretation) voice.ExecutionOutcome {
	query := strings.ToLower(interp.Slots.GetOr(voice.SlotQuery, ""))
	if query == "" {
		return informational("What should I search for?", "", "Empty query.")
	}

	var hits []string
	for _, t := range uc.deps.Tasks.Tasks() {
		if strings.Contains(strings.ToLower(t.Title), query) {
			hits = append(hits, "Task: "+t.Title)
		}
	}
	for _, e := range uc.deps.Events.Events() {
		if strings.Contains(strings.ToLower(e.Title), query) {
			hits = append(hits, "Event: "+e.Title)
		}
	}

	if len(hits) == 0 {
		return informational(
			fmt.Sprintf("No matches for %q.", query),
			"",
			"Searched task and event titles.",
		)
	}
	return informational(
		fmt.Sprintf("Found %d matches for %q.", len(hits), query),
		strings.Join(hits, "; "),
		"Searched task and event titles.",
	)
}

// screenRoutes maps spoken screen names to routes.
var screenRoutes = map[string]string{
	"tasks":    voice.RouteTasks,
	"chores":   voice.RouteTasks,
	"calendar": voice.RouteCalendar,
	"meals":    voice.RouteMeals,
	"grocery":  voice.RouteMeals,
	"finances": voice.RouteFinances,
	"budget":   voice.RouteFinances,
	"pets":     voice.RoutePets,
	"notes":    voice.RouteNotes,
	"docs":     voice.RouteNotes,
	"family":   voice.RouteFamily,
	"home":     voice.RouteRelay,
}

func (uc *implUseCase) openScreen(interp voice.Interpretation) voice.ExecutionOutcome {
	screen := strings.ToLower(interp.Slots.GetOr(voice.SlotScreen, ""))
	route, ok := screenRoutes[screen]
	if !ok {
		return informational(
			fmt.Sprintf("I don't know a screen called %q.", screen),
			"Try tasks, calendar, meals, finances, pets, notes or family.",
			"Screen name not in the route table.",
		)
	}

	if uc.deps.Navigate != nil {
		uc.deps.Navigate(route)
	}
	out := informational(fmt.Sprintf("Opening %s.", screen), "", "Navigation only, nothing changed.")
	out.Route = route
	return out
}

func (uc *implUseCase) help() voice.ExecutionOutcome {
	return informational(
		"You can ask me to add tasks, plan meals, log expenses, track pets and more.",
		`Try "remind me to call the vet tomorrow" or "add milk to the grocery list".`,
		"Canned capability summary.",
	)
}

func (uc *implUseCase) smallTalk(interp voice.Interpretation) voice.ExecutionOutcome {
	lower := strings.ToLower(interp.Slots.GetOr(voice.SlotQuery, ""))

	message := "Happy to help!"
	switch {
	case strings.Contains(lower, "thank"):
		message = "You're welcome!"
	case strings.Contains(lower, "hello"), strings.Contains(lower, "hi "):
		message = "Hi there! What can I do for the household?"
	case strings.Contains(lower, "how are you"):
		message = "Running smoothly. What do you need?"
	}

	return informational(message, "", "Conversational response, nothing changed.")
}

func (uc *implUseCase) unknown() voice.ExecutionOutcome {
	return informational(
		"I'm not sure what you meant.",
		`Try something like "remind me to call the vet tomorrow", or say "help".`,
		"No intent matched the utterance.",
	)
}
