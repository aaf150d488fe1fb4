package slots

import (
	"regexp"
	"strings"

	"household-relay/internal/voice"
)

// ---- title ----

var titleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^remind me to\s+(.+)$`),
	regexp.MustCompile(`(?i)^(?:add|create)(?: a)?(?: new)? task(?: to| called| for|:)?\s+(.+)$`),
	regexp.MustCompile(`(?i)^i need to\s+(.+)$`),
	regexp.MustCompile(`(?i)^(?:schedule|book)\s+(?:a\s+|an\s+|the\s+)?(.+)$`),
	regexp.MustCompile(`(?i)^(?:plan|make|cook)\s+(.+?)\s+for\s+(?:breakfast|lunch|dinner)\b`),
	regexp.MustCompile(`(?i)\b(?:having|have)\s+(.+?)\s+for\s+(?:breakfast|lunch|dinner)\b`),
	regexp.MustCompile(`(?i)^note(?:\s+that)?[:,]?\s+(.+)$`),
	regexp.MustCompile(`(?i)^(?:jot|write)(?:\s+down)?\s+(.+)$`),
	regexp.MustCompile(`(?i)^(?:tell|text|message)\s+[a-z]+\s+(?:to\s+)?(.+)$`),
	regexp.MustCompile(`(?i)^assign\s+(?:the\s+)?(.+?)\s+to\s+[a-z]+$`),
	regexp.MustCompile(`(?i)^give\s+[a-z]+\s+the\s+(.+?)\s+chore$`),
}

func extractTitle(text string) (string, bool) {
	for _, re := range titleRes {
		if m := re.FindStringSubmatch(text); m != nil {
			title := stripTrailingDateTime(m[1])
			if title != "" {
				return title, true
			}
		}
	}
	return "", false
}

// ---- date ----

var (
	weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	todayRe    = regexp.MustCompile(`(?i)\b(?:today|tonight)\b`)
	tomorrowRe = regexp.MustCompile(`(?i)\btomorrow\b`)
	nextWeekRe = regexp.MustCompile(`(?i)\bnext week\b`)
	weekendRe  = regexp.MustCompile(`(?i)\bthis weekend\b`)
	nextDayRe  = regexp.MustCompile(`(?i)\bnext (` + weekdayAlt + `)\b`)
	weekdayRe  = regexp.MustCompile(`(?i)\b(` + weekdayAlt + `)\b`)
	inDaysRe   = regexp.MustCompile(`(?i)\bin (\d+) (days?|weeks?|months?)\b`)
	isoRe      = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	monthDayRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	recurScrub = regexp.MustCompile(`(?i)\bevery\s+[a-z]+\b`)
)

func extractDate(text string) (string, bool) {
	// Recurrence phrases own their weekday ("every monday" is not a date).
	text = recurScrub.ReplaceAllString(text, "")

	switch {
	case tomorrowRe.MatchString(text):
		return "Tomorrow", true
	case todayRe.MatchString(text):
		return "Today", true
	case nextWeekRe.MatchString(text):
		return "Next week", true
	case weekendRe.MatchString(text):
		return "This weekend", true
	}
	if m := nextDayRe.FindStringSubmatch(text); m != nil {
		return "Next " + capitalize(m[1]), true
	}
	if m := inDaysRe.FindStringSubmatch(text); m != nil {
		return "In " + m[1] + " " + strings.ToLower(m[2]), true
	}
	if m := isoRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]) + " " + m[2], true
	}
	if m := weekdayRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	return "", false
}

// ---- time ----

var (
	clockRe   = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	noonRe    = regexp.MustCompile(`(?i)\b(noon|midnight)\b`)
	dayPartRe = regexp.MustCompile(`(?i)\b(morning|afternoon|evening)\b`)
)

func extractTime(text string) (string, bool) {
	if m := clockRe.FindStringSubmatch(text); m != nil {
		if m[2] != "" {
			return m[1] + ":" + m[2] + " " + strings.ToUpper(m[3]), true
		}
		return m[1] + " " + strings.ToUpper(m[3]), true
	}
	if m := noonRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	if m := dayPartRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	return "", false
}

// ---- range ----

var (
	fromToRe = regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+(?:to|until|through)\s+(.+)$`)
	spanRe   = regexp.MustCompile(`(?i)\b(this|last) (week|month)\b`)
)

func extractRange(text string) (string, bool) {
	if m := fromToRe.FindStringSubmatch(text); m != nil {
		return m[1] + " to " + stripTrailingDateTime(m[2]), true
	}
	if m := spanRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]) + " " + m[2], true
	}
	return "", false
}

// ---- amount ----

var (
	currencyRe = regexp.MustCompile(`[$€£]\s?(\d+(?:\.\d{1,2})?)`)
	dollarsRe  = regexp.MustCompile(`(?i)\b(\d+(?:\.\d{1,2})?)\s?(?:dollars|bucks|usd)\b`)
)

func extractAmount(text string) (string, bool) {
	if m := currencyRe.FindStringSubmatch(text); m != nil {
		return "$" + m[1], true
	}
	if m := dollarsRe.FindStringSubmatch(text); m != nil {
		return "$" + m[1], true
	}
	return "", false
}

// ---- recurrence ----

var (
	everyRe  = regexp.MustCompile(`(?i)\bevery\s+(day|morning|evening|night|week|month|year|weekday|weekend|` + weekdayAlt + `)\b`)
	periodRe = regexp.MustCompile(`(?i)\b(daily|weekly|monthly|yearly)\b`)
)

func extractRecurrence(text string) (string, bool) {
	if m := everyRe.FindStringSubmatch(text); m != nil {
		return "Every " + strings.ToLower(m[1]), true
	}
	if m := periodRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	return "", false
}

// ---- url ----

var urlRe = regexp.MustCompile(`https?://[^\s]+`)

func extractURL(text string) (string, bool) {
	if m := urlRe.FindString(text); m != "" {
		return strings.TrimRight(m, ".,!?"), true
	}
	return "", false
}

// ---- person / member ----

var (
	kinRe      = regexp.MustCompile(`(?i)\b(mom|mum|dad|mommy|daddy|grandma|grandpa|granny)\b`)
	tellRe     = regexp.MustCompile(`(?i)^(?:tell|text|message|ask)\s+([a-z]+)\b`)
	assignToRe = regexp.MustCompile(`(?i)\b(?:assign(?:ed)?\s+(?:the\s+)?.+?\s+to|give)\s+([a-z]+)\b`)
	namedRe    = regexp.MustCompile(`(?i)\bnamed\s+([a-z]+)\b`)
	forNameRe  = regexp.MustCompile(`(?i)\bfor\s+([a-z]+)$`)
)

func extractPerson(text string) (string, bool) {
	if m := kinRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	if m := tellRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	if m := assignToRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	if m := namedRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	if m := forNameRe.FindStringSubmatch(stripTrailingDateTime(text)); m != nil {
		return capitalize(m[1]), true
	}
	return "", false
}

// ---- pet ----

var (
	speciesRe = regexp.MustCompile(`(?i)\bthe\s+(dog|cat|puppy|kitten|bird|fish|hamster|rabbit)\b`)
	petVerbRe = regexp.MustCompile(`(?i)\b(?:fed|feed|walk(?:ed)?)\s+(?:the\s+)?([a-z]+)\b`)
	petForRe  = regexp.MustCompile(`(?i)\bvet\s+(?:visit|appointment|checkup)\s+for\s+([a-z]+)\b`)
)

// petStopWords are verb-adjacent words that are never pet names.
var petStopWords = map[string]bool{"the": true, "a": true, "some": true, "my": true, "our": true}

func extractPet(text string) (string, bool) {
	if m := petForRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	if m := speciesRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	if m := petVerbRe.FindStringSubmatch(text); m != nil && !petStopWords[strings.ToLower(m[1])] {
		return capitalize(m[1]), true
	}
	return "", false
}

// ---- grocery item ----

var (
	addToListRe    = regexp.MustCompile(`(?i)\badd\s+(.+?)\s+to\s+(?:the\s+|our\s+|my\s+)?(?:grocery|groceries|shopping)\s*list\b`)
	dropFromListRe = regexp.MustCompile(`(?i)\b(?:remove|take)\s+(.+?)\s+(?:from|off)\s+(?:the\s+)?(?:grocery|groceries|shopping)\s*list\b`)
	outOfRe        = regexp.MustCompile(`(?i)\bout of\s+(.+)$`)
)

func extractItem(text string) (string, bool) {
	for _, re := range []*regexp.Regexp{addToListRe, dropFromListRe, outOfRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimRight(m[1], ".,!?"), true
		}
	}
	return "", false
}

// ---- task / event references ----

var (
	quotedRe   = regexp.MustCompile(`"([^"]+)"`)
	markDoneRe = regexp.MustCompile(`(?i)\b(?:mark|check)\s+(?:the\s+|my\s+)?(.+?)\s+(?:as\s+)?(?:done|complete|completed|off)\b`)
	finishedRe = regexp.MustCompile(`(?i)\b(?:finished|completed|done with)\s+(?:the\s+|my\s+)?(.+)$`)
	taskVerbRe = regexp.MustCompile(`(?i)\b(?:delete|remove|cancel|clear|reschedule|postpone|push|bump)\s+(?:the\s+|my\s+)?(.+?)(?:\s+task)?$`)
	eventRefRe = regexp.MustCompile(`(?i)\b(?:cancel|delete|remove|move|push|reschedule|bump)\s+(?:the\s+|my\s+)?(.+?)(?:\s+(?:event|meeting|appointment|practice))?$`)
)

func extractTaskRef(text string) (string, bool) {
	if m := quotedRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := markDoneRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	stripped := stripTrailingDateTime(text)
	if m := finishedRe.FindStringSubmatch(stripped); m != nil {
		return m[1], true
	}
	if m := taskVerbRe.FindStringSubmatch(stripped); m != nil {
		return m[1], true
	}
	return "", false
}

func extractEventRef(text string) (string, bool) {
	if m := quotedRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := eventRefRe.FindStringSubmatch(stripTrailingDateTime(text)); m != nil {
		return m[1], true
	}
	return "", false
}

// ---- location ----

var locationRe = regexp.MustCompile(`(?i)\b(?:at|in)\s+the\s+([a-z][a-z ]{2,})$`)

func extractLocation(text string) (string, bool) {
	if m := locationRe.FindStringSubmatch(stripTrailingDateTime(text)); m != nil {
		return m[1], true
	}
	return "", false
}

// ---- query ----

var queryRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bnotes?\s+(?:for|about)\s+(.+)$`),
	regexp.MustCompile(`(?i)\b(?:everything\s+)?about\s+(.+)$`),
	regexp.MustCompile(`(?i)\b(?:search|look up)(?:\s+for)?\s+(.+)$`),
	regexp.MustCompile(`(?i)^find\s+(.+)$`),
}

func extractQuery(text string) (string, bool) {
	for _, re := range queryRes {
		if m := re.FindStringSubmatch(text); m != nil {
			q := strings.TrimSpace(strings.TrimRight(m[1], ".,!?"))
			q = strings.TrimPrefix(q, "the ")
			if q != "" {
				return q, true
			}
		}
	}
	return "", false
}

// ---- meal type ----

var mealTypeRe = regexp.MustCompile(`(?i)\b(breakfast|lunch|dinner|snack)\b`)

func extractMealType(text string) (string, bool) {
	if m := mealTypeRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	return "", false
}

// ---- reason ----

var reasonRe = regexp.MustCompile(`(?i)\bfor\s+(?:a\s+|an\s+|his\s+|her\s+)?(check-?up|shots|vaccinations?|grooming|teeth cleaning|surgery)\b`)

func extractReason(text string) (string, bool) {
	if m := reasonRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	return "", false
}

// ---- category ----

var categoryRe = regexp.MustCompile(`(?i)\b(?:on|for)\s+(groceries|gas|rent|utilities|entertainment|dining|transport|clothes|medical|internet|lunch)\b`)

func extractCategory(text string) (string, bool) {
	if m := categoryRe.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), true
	}
	return "", false
}

// ---- screen ----

var screenRe = regexp.MustCompile(`(?i)^(?:open|go to|take me to|show me)\s+(?:the\s+)?([a-z &]+?)(?:\s+(?:screen|page|tab))?$`)

func extractScreen(text string) (string, bool) {
	if m := screenRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// genericRules is the full extraction battery, run for every intent.
// Rules are independent; the first match per slot wins.
var genericRules = []slotRule{
	{voice.SlotTitle, extractTitle},
	{voice.SlotDate, extractDate},
	{voice.SlotTime, extractTime},
	{voice.SlotRange, extractRange},
	{voice.SlotAmount, extractAmount},
	{voice.SlotRecurrence, extractRecurrence},
	{voice.SlotURL, extractURL},
	{voice.SlotPerson, extractPerson},
	{voice.SlotPet, extractPet},
	{voice.SlotItem, extractItem},
	{voice.SlotTaskRef, extractTaskRef},
	{voice.SlotEventRef, extractEventRef},
	{voice.SlotLocation, extractLocation},
	{voice.SlotQuery, extractQuery},
	{voice.SlotMealType, extractMealType},
	{voice.SlotReason, extractReason},
	{voice.SlotCategory, extractCategory},
	{voice.SlotScreen, extractScreen},
}
