package catalog_test

import (
	"strings"
	"testing"

	"household-relay/internal/voice"
	"household-relay/internal/voice/catalog"
)

func TestSpecsAreWellFormed(t *testing.T) {
	specs := catalog.Specs()
	if len(specs) < 30 {
		t.Fatalf("expected a full catalog, got %d specs", len(specs))
	}

	seen := map[voice.Intent]bool{}
	for _, s := range specs {
		if s.Name == "" {
			t.Errorf("spec with empty name: %+v", s)
		}
		if seen[s.Name] {
			t.Errorf("duplicate intent %s", s.Name)
		}
		seen[s.Name] = true

		if s.Domain == "" || s.HandlerDomain == "" {
			t.Errorf("%s: missing domain classification", s.Name)
		}

		for _, ex := range s.Examples {
			if ex != strings.ToLower(ex) {
				t.Errorf("%s: example %q must be lowercase (matched against lowercased input)", s.Name, ex)
			}
		}

		// Required and optional slot lists must not overlap.
		for _, req := range s.RequiredSlots {
			for _, opt := range s.OptionalSlots {
				if req == opt {
					t.Errorf("%s: slot %s is both required and optional", s.Name, req)
				}
			}
		}
	}

	if !seen[voice.IntentUnknown] {
		t.Errorf("catalog must contain the unknown_intent catch-all")
	}
}

func TestGet(t *testing.T) {
	s, ok := catalog.Get(voice.IntentCreateTask)
	if !ok || s.Name != voice.IntentCreateTask {
		t.Fatalf("Get(create_task) = %+v, %v", s, ok)
	}

	if _, ok := catalog.Get("nope"); ok {
		t.Errorf("Get(nope) should not resolve")
	}
}

func TestUnknownHasNoScoreSignals(t *testing.T) {
	u := catalog.Unknown()
	if len(u.MatchRules) != 0 || len(u.Keywords) != 0 || len(u.Examples) != 0 {
		t.Errorf("unknown_intent must never score above zero: %+v", u)
	}
}

func TestDestinationLabels(t *testing.T) {
	if got := catalog.DestinationLabel(voice.IntentAddGroceryItem); got != catalog.LabelMeals {
		t.Errorf("add_grocery_item label = %q, want %q", got, catalog.LabelMeals)
	}
	if got := catalog.DestinationLabel(voice.IntentShowSummary); got != catalog.LabelAISummary {
		t.Errorf("show_summary label = %q, want %q", got, catalog.LabelAISummary)
	}
	// Intents without a specific label fall back to the generic hub.
	if got := catalog.DestinationLabel(voice.IntentHelp); got != catalog.LabelRelay {
		t.Errorf("help label = %q, want %q", got, catalog.LabelRelay)
	}
}

func TestFavoredFamilyList(t *testing.T) {
	fam := catalog.Favored(voice.TabFamily)
	if len(fam) == 0 {
		t.Fatalf("family favored list must not be empty (used for family-mode damping)")
	}
	for _, in := range fam {
		s, ok := catalog.Get(in)
		if !ok {
			t.Errorf("favored intent %s not in catalog", in)
			continue
		}
		if s.Domain != voice.DomainFamily {
			t.Errorf("family favored intent %s has domain %s", in, s.Domain)
		}
	}
}
