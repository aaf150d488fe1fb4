package usecase

import (
	"reflect"
	"testing"

	"household-relay/internal/voice"
	"household-relay/internal/voice/catalog"
)

func TestScoreAll(t *testing.T) {
	t.Run("Rule keyword and example stack", func(t *testing.T) {
		scores := scoreAll("remind me to call the vet tomorrow")
		got := scores[voice.IntentCreateTask]
		want := catalog.MatchRuleWeight + catalog.KeywordWeight + catalog.ExampleBonus
		if got != want {
			t.Errorf("create_task score = %.2f, want %.2f", got, want)
		}
	})

	t.Run("Example bonus applies once", func(t *testing.T) {
		// Both small-talk examples are substrings of this utterance.
		scores := scoreAll("thanks, thank you")
		if got := scores[voice.IntentSmallTalkQnA]; got > catalog.MatchRuleWeight+2*catalog.KeywordWeight+catalog.ExampleBonus {
			t.Errorf("example bonus stacked: score %.2f", got)
		}
	})

	t.Run("No signal scores zero", func(t *testing.T) {
		scores := scoreAll("xyzzy plugh")
		for intent, s := range scores {
			if s != 0 {
				t.Errorf("%s scored %.2f for gibberish", intent, s)
			}
		}
	})
}

func TestApplyBias(t *testing.T) {
	tasksCtx := voice.NewRouteContext("/tasks", true, "")

	t.Run("Boosts favored intents that matched", func(t *testing.T) {
		scores := map[voice.Intent]float64{voice.IntentCreateTask: 1.0, voice.IntentPlanMeal: 1.0}
		out := applyBias(scores, tasksCtx)
		if out[voice.IntentCreateTask] != 1.0+catalog.FavoredBoost {
			t.Errorf("create_task = %.2f", out[voice.IntentCreateTask])
		}
		if out[voice.IntentPlanMeal] != 1.0 {
			t.Errorf("plan_meal = %.2f, should be unboosted off the meals tab", out[voice.IntentPlanMeal])
		}
	})

	t.Run("Leaves zero scores alone", func(t *testing.T) {
		scores := map[voice.Intent]float64{voice.IntentCreateTask: 0}
		out := applyBias(scores, tasksCtx)
		if out[voice.IntentCreateTask] != 0 {
			t.Errorf("zero score was boosted to %.2f", out[voice.IntentCreateTask])
		}
	})

	t.Run("Damps family intents with family mode off", func(t *testing.T) {
		scores := map[voice.Intent]float64{
			voice.IntentAssignChore:   2.0,
			voice.IntentShowFamilyHub: 0.5,
		}
		out := applyBias(scores, voice.NewRouteContext("/tasks", false, ""))
		if out[voice.IntentAssignChore] != 2.0-catalog.FamilyDamp {
			t.Errorf("assign_chore = %.2f", out[voice.IntentAssignChore])
		}
		if out[voice.IntentShowFamilyHub] != 0 {
			t.Errorf("show_family_hub = %.2f, want clamp at 0", out[voice.IntentShowFamilyHub])
		}
	})

	t.Run("Deterministic and input-preserving", func(t *testing.T) {
		scores := map[voice.Intent]float64{voice.IntentCreateTask: 1.0}
		a := applyBias(scores, tasksCtx)
		b := applyBias(scores, tasksCtx)
		if !reflect.DeepEqual(a, b) {
			t.Error("same input should give same output")
		}
		if scores[voice.IntentCreateTask] != 1.0 {
			t.Error("applyBias must not mutate its input")
		}
	})
}

func TestResolveFallback(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pathname string
		want     voice.Intent
		specific bool
	}{
		{"Delete plus task wins anywhere", "please delete that task", "/notes", voice.IntentDeleteTask, true},
		{"Grocery on meals tab", "grocery run stuff", "/meals", voice.IntentAddGroceryItem, true},
		{"Spent on finances tab", "spent too much", "/finances", voice.IntentLogExpense, true},
		{"Vet on pets tab", "vet thing", "/pets", voice.IntentScheduleVetVisit, true},
		{"Tab default", "hmm whatever", "/meals", voice.IntentShowMealPlan, true},
		{"No tab no heuristic", "hmm whatever", "/", voice.IntentUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := voice.NewRouteContext(tt.pathname, true, "")
			got, specific := resolveFallback(tt.text, rc)
			if got != tt.want || specific != tt.specific {
				t.Errorf("resolveFallback = %s/%t, want %s/%t", got, specific, tt.want, tt.specific)
			}
		})
	}
}

func TestRankDeterministicTieBreak(t *testing.T) {
	scores := map[voice.Intent]float64{
		voice.IntentCreateTask:  1.0,
		voice.IntentCreateEvent: 1.0,
		voice.IntentPlanMeal:    0.5,
	}
	first := rank(scores)
	for i := 0; i < 10; i++ {
		if got := rank(scores); !reflect.DeepEqual(got, first) {
			t.Fatal("rank order should be stable across calls")
		}
	}
	if first[0] != voice.IntentCreateTask {
		t.Errorf("catalog order should break ties, got %s first", first[0])
	}
}
