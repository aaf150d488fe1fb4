// Package catalog holds the static intent specifications and the companion
// lookup tables (context bias, destination labels, preview fallbacks).
// Everything here is declarative data built once at process start; the
// scorer never special-cases an intent.
package catalog

import (
	"regexp"

	"household-relay/internal/voice"
)

var (
	specs  []voice.IntentSpec
	byName map[voice.Intent]voice.IntentSpec
)

func init() {
	specs = buildSpecs()
	byName = make(map[voice.Intent]voice.IntentSpec, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
	}
}

// Specs returns every intent specification in catalog order.
// Callers must treat the slice as read-only.
func Specs() []voice.IntentSpec {
	return specs
}

// Get looks up one intent specification by name.
func Get(name voice.Intent) (voice.IntentSpec, bool) {
	s, ok := byName[name]
	return s, ok
}

// Unknown returns the catch-all specification.
func Unknown() voice.IntentSpec {
	return byName[voice.IntentUnknown]
}

// Favored returns the intents boosted when the user is on the given tab.
func Favored(tab voice.Tab) []voice.Intent {
	return favoredByTab[tab]
}

// DestinationLabel returns the screen label shown for an intent.
func DestinationLabel(name voice.Intent) string {
	if label, ok := destinationLabels[name]; ok {
		return label
	}
	return LabelRelay
}

// PreviewFallback returns the canned preview line used when an
// interpretation carries no high-value slots.
func PreviewFallback(name voice.Intent) string {
	if line, ok := previewFallbacks[name]; ok {
		return line
	}
	return "Voice action"
}

// rule builds a case-insensitive match rule with the standard weight.
func rule(pattern string) voice.MatchRule {
	return voice.MatchRule{
		Pattern: regexp.MustCompile(`(?i)` + pattern),
		Weight:  MatchRuleWeight,
	}
}
