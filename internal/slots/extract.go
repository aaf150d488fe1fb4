package slots

import (
	"regexp"
	"strings"
	"unicode"

	"household-relay/internal/voice"
)

// Extract runs the generic rule battery against the raw utterance and then
// applies intent-specific normalization defaults. It never fails; slots
// without a match are simply absent from the result.
func Extract(intent voice.Intent, text string) voice.SlotValues {
	out := voice.SlotValues{}
	cleaned := clean(text)
	if cleaned == "" {
		return out
	}

	for _, r := range genericRules {
		if out.Has(r.slot) {
			continue
		}
		if v, ok := r.extract(cleaned); ok {
			out[r.slot] = v
		}
	}

	normalize(intent, cleaned, out)
	return out
}

// clean trims whitespace and trailing punctuation and collapses runs of
// spaces, leaving the original casing intact.
func clean(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, ".,!? ")
	return strings.Join(strings.Fields(text), " ")
}

// trailingDateTimeRes match date/time phrases hanging off the end of a
// captured value ("call the vet tomorrow" -> "call the vet"). Applied
// repeatedly until nothing more strips.
var trailingDateTimeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+(?:on|at|by|for|to|until)?\s*(?:today|tonight|tomorrow|yesterday|next week|this weekend|this week|this month)$`),
	regexp.MustCompile(`(?i)\s+(?:on\s+|to\s+|next\s+|by\s+|until\s+)?(?:` + weekdayAlt + `)$`),
	regexp.MustCompile(`(?i)\s+in\s+\d+\s+(?:days?|weeks?|months?)$`),
	regexp.MustCompile(`(?i)\s+(?:at\s+)?\d{1,2}(?::\d{2})?\s*(?:am|pm)$`),
	regexp.MustCompile(`(?i)\s+at\s+(?:noon|midnight)$`),
	regexp.MustCompile(`(?i)\s+(?:in\s+the\s+|this\s+)?(?:morning|afternoon|evening)$`),
	regexp.MustCompile(`(?i)\s+every\s+[a-z]+$`),
}

func stripTrailingDateTime(s string) string {
	s = strings.TrimSpace(s)
	for {
		before := s
		for _, re := range trailingDateTimeRes {
			s = re.ReplaceAllString(s, "")
		}
		if s == before {
			return s
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
