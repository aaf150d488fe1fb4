// Package slots pulls typed values (dates, times, amounts, people, ...) out
// of raw utterance text. Extraction is a fixed battery of declarative rules;
// intent-specific normalization only fills derived defaults afterwards.
// Extraction never fails: a rule that does not match simply omits its slot.
package slots

// extractFn attempts to pull one slot value out of the cleaned text.
type extractFn func(text string) (string, bool)

// slotRule binds a slot identifier to one extraction attempt. Multiple rules
// may target the same slot; the first that matches wins.
type slotRule struct {
	slot    string
	extract extractFn
}
