package followup_test

import (
	"strings"
	"testing"

	"household-relay/internal/followup"
	"household-relay/internal/voice"
)

func TestResolve(t *testing.T) {
	t.Run("Curated prompt", func(t *testing.T) {
		fu := followup.Resolve(voice.IntentAddGroceryItem, voice.SlotItem)
		if fu.Slot != voice.SlotItem {
			t.Errorf("slot = %q, want %q", fu.Slot, voice.SlotItem)
		}
		if fu.Question != "What should I add to the list?" {
			t.Errorf("unexpected question %q", fu.Question)
		}
		if len(fu.Chips) != 3 {
			t.Errorf("expected 3 chips, got %d", len(fu.Chips))
		}
	})

	t.Run("Generic prompt names the slot", func(t *testing.T) {
		fu := followup.Resolve(voice.IntentLogExpense, voice.SlotCategory)
		if !strings.Contains(fu.Question, voice.SlotCategory) {
			t.Errorf("generic question %q should mention the slot", fu.Question)
		}
		if len(fu.Chips) == 0 {
			t.Error("generic prompt should still carry chips")
		}
	})

	t.Run("Date-shaped slots get date chips", func(t *testing.T) {
		fu := followup.Resolve(voice.IntentUnknown, voice.SlotDate)
		found := false
		for _, c := range fu.Chips {
			if c == "Tomorrow" {
				found = true
			}
		}
		if !found {
			t.Errorf("date slot chips %v should offer Tomorrow", fu.Chips)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := followup.Resolve(voice.IntentCreateTask, voice.SlotTitle)
		b := followup.Resolve(voice.IntentCreateTask, voice.SlotTitle)
		if a.Question != b.Question || len(a.Chips) != len(b.Chips) {
			t.Error("Resolve should be pure")
		}
	})
}
