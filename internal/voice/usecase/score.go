package usecase

import (
	"sort"
	"strings"

	"household-relay/internal/voice"
	"household-relay/internal/voice/catalog"
)

// scoreAll computes the raw per-intent score for an utterance: match rules
// by weight, keywords by substring, plus a single example bonus. Intents
// with no signal score 0 and stay in the map so bias can still lift them.
func scoreAll(text string) map[voice.Intent]float64 {
	lower := strings.ToLower(text)
	scores := make(map[voice.Intent]float64, len(catalog.Specs()))

	for _, spec := range catalog.Specs() {
		var score float64
		for _, r := range spec.MatchRules {
			if r.Pattern.MatchString(text) {
				score += r.Weight
			}
		}
		for _, kw := range spec.Keywords {
			if strings.Contains(lower, kw) {
				score += catalog.KeywordWeight
			}
		}
		for _, ex := range spec.Examples {
			if strings.Contains(lower, ex) {
				score += catalog.ExampleBonus
				break
			}
		}
		scores[spec.Name] = score
	}
	return scores
}

// applyBias returns a new score map with the tab boost and family damp
// applied. It never mutates its input, so repeated calls with the same
// arguments always produce the same output.
func applyBias(scores map[voice.Intent]float64, rc voice.RouteContext) map[voice.Intent]float64 {
	out := make(map[voice.Intent]float64, len(scores))
	for intent, s := range scores {
		out[intent] = s
	}

	// Zero-scored intents stay at zero; the boost only amplifies intents
	// that already matched, so unmatched utterances still reach the
	// fallback resolver.
	for _, intent := range catalog.Favored(rc.Tab) {
		if s, ok := out[intent]; ok && s > 0 {
			out[intent] = s + catalog.FavoredBoost
		}
	}

	if !rc.FamilyModeEnabled {
		for _, intent := range catalog.Favored(voice.TabFamily) {
			if s, ok := out[intent]; ok {
				s -= catalog.FamilyDamp
				if s < 0 {
					s = 0
				}
				out[intent] = s
			}
		}
	}
	return out
}

// rank orders intents by boosted score descending, breaking ties by catalog
// order so routing stays deterministic.
func rank(scores map[voice.Intent]float64) []voice.Intent {
	order := make(map[voice.Intent]int, len(catalog.Specs()))
	for i, spec := range catalog.Specs() {
		order[spec.Name] = i
	}

	intents := make([]voice.Intent, 0, len(scores))
	for intent := range scores {
		intents = append(intents, intent)
	}
	sort.SliceStable(intents, func(i, j int) bool {
		if scores[intents[i]] != scores[intents[j]] {
			return scores[intents[i]] > scores[intents[j]]
		}
		return order[intents[i]] < order[intents[j]]
	})
	return intents
}
