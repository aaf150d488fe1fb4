package slots_test

import (
	"testing"

	"household-relay/internal/slots"
	"household-relay/internal/voice"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		intent voice.Intent
		text   string
		want   map[string]string // slots that must be present with these values
		absent []string          // slots that must not be present
	}{
		{
			name:   "create task with verb phrase and relative date",
			intent: voice.IntentCreateTask,
			text:   "remind me to call the vet tomorrow",
			want: map[string]string{
				voice.SlotTitle: "call the vet",
				voice.SlotDate:  "Tomorrow",
			},
			absent: []string{voice.SlotTime, voice.SlotPet},
		},
		{
			name:   "create task falls back to cleaned utterance",
			intent: voice.IntentCreateTask,
			text:   "water the plants on friday",
			want: map[string]string{
				voice.SlotTitle: "water the plants",
				voice.SlotDate:  "Friday",
			},
		},
		{
			name:   "grocery item",
			intent: voice.IntentAddGroceryItem,
			text:   "add milk to the grocery list",
			want:   map[string]string{voice.SlotItem: "milk"},
			absent: []string{voice.SlotTitle, voice.SlotDate},
		},
		{
			name:   "out of phrasing",
			intent: voice.IntentAddGroceryItem,
			text:   "we're out of eggs",
			want:   map[string]string{voice.SlotItem: "eggs"},
		},
		{
			name:   "delete task keeps full reference",
			intent: voice.IntentDeleteTask,
			text:   "delete bogus task that does not exist",
			want:   map[string]string{voice.SlotTaskRef: "bogus task that does not exist"},
		},
		{
			name:   "complete task from mark-as-done",
			intent: voice.IntentCompleteTask,
			text:   "mark take out trash as done",
			want:   map[string]string{voice.SlotTaskRef: "take out trash"},
		},
		{
			name:   "complete task from finished",
			intent: voice.IntentCompleteTask,
			text:   "i finished the laundry",
			want:   map[string]string{voice.SlotTaskRef: "laundry"},
		},
		{
			name:   "reschedule strips trailing weekday",
			intent: voice.IntentRescheduleTask,
			text:   "reschedule the dentist task to friday",
			want: map[string]string{
				voice.SlotTaskRef: "dentist",
				voice.SlotDate:    "Friday",
			},
		},
		{
			name:   "event with date time and title",
			intent: voice.IntentCreateEvent,
			text:   "schedule a dentist appointment tomorrow at 3pm",
			want: map[string]string{
				voice.SlotTitle: "dentist appointment",
				voice.SlotDate:  "Tomorrow",
				voice.SlotTime:  "3 PM",
			},
		},
		{
			name:   "event title from calendar phrasing",
			intent: voice.IntentCreateEvent,
			text:   "add soccer practice to the calendar",
			want:   map[string]string{voice.SlotTitle: "soccer practice"},
		},
		{
			name:   "move event reference",
			intent: voice.IntentMoveEvent,
			text:   "move the dentist appointment to friday",
			want: map[string]string{
				voice.SlotEventRef: "dentist",
				voice.SlotDate:     "Friday",
			},
		},
		{
			name:   "expense amount and category",
			intent: voice.IntentLogExpense,
			text:   "i spent $40 on groceries",
			want: map[string]string{
				voice.SlotAmount:   "$40",
				voice.SlotCategory: "Groceries",
			},
		},
		{
			name:   "amount in words",
			intent: voice.IntentLogExpense,
			text:   "i spent 25 dollars on gas",
			want: map[string]string{
				voice.SlotAmount:   "$25",
				voice.SlotCategory: "Gas",
			},
		},
		{
			name:   "bill name derived",
			intent: voice.IntentMarkBillPaid,
			text:   "mark the electric bill as paid",
			want:   map[string]string{voice.SlotTitle: "electric bill"},
		},
		{
			name:   "paid the rent",
			intent: voice.IntentMarkBillPaid,
			text:   "i paid the rent",
			want:   map[string]string{voice.SlotTitle: "rent"},
		},
		{
			name:   "vet visit with pet, date and default reason",
			intent: voice.IntentScheduleVetVisit,
			text:   "schedule a vet visit for rex next week",
			want: map[string]string{
				voice.SlotPet:    "Rex",
				voice.SlotDate:   "Next week",
				voice.SlotReason: "Routine check",
			},
		},
		{
			name:   "pet species reference",
			intent: voice.IntentLogPetFeeding,
			text:   "log that the dog was fed",
			want:   map[string]string{voice.SlotPet: "Dog"},
		},
		{
			name:   "pet feeding with day part",
			intent: voice.IntentLogPetFeeding,
			text:   "i fed rex this morning",
			want: map[string]string{
				voice.SlotPet:  "Rex",
				voice.SlotTime: "Morning",
			},
		},
		{
			name:   "assign chore",
			intent: voice.IntentAssignChore,
			text:   "assign the dishes to sam",
			want: map[string]string{
				voice.SlotTitle:  "dishes",
				voice.SlotMember: "Sam",
			},
		},
		{
			name:   "family message",
			intent: voice.IntentSendFamilyMessage,
			text:   "tell dad dinner is ready",
			want: map[string]string{
				voice.SlotMember: "Dad",
				voice.SlotTitle:  "dinner is ready",
			},
		},
		{
			name:   "add family member by name",
			intent: voice.IntentAddFamilyMember,
			text:   "add a new family member named joe",
			want:   map[string]string{voice.SlotMember: "Joe"},
		},
		{
			name:   "meal plan dish and type",
			intent: voice.IntentPlanMeal,
			text:   "plan tacos for dinner tomorrow",
			want: map[string]string{
				voice.SlotTitle:    "tacos",
				voice.SlotMealType: "Dinner",
				voice.SlotDate:     "Tomorrow",
			},
		},
		{
			name:   "recurrence owns its weekday",
			intent: voice.IntentCreateTask,
			text:   "remind me to water the plants every monday",
			want: map[string]string{
				voice.SlotTitle:      "water the plants",
				voice.SlotRecurrence: "Every monday",
			},
			absent: []string{voice.SlotDate},
		},
		{
			name:   "url capture",
			intent: voice.IntentSaveLink,
			text:   "save this link https://example.com/recipe",
			want:   map[string]string{voice.SlotURL: "https://example.com/recipe"},
		},
		{
			name:   "notes query",
			intent: voice.IntentSearchNotes,
			text:   "search my notes for wifi",
			want:   map[string]string{voice.SlotQuery: "wifi"},
		},
		{
			name:   "generic search query drops leading article",
			intent: voice.IntentSearchEverything,
			text:   "search for the dentist",
			want:   map[string]string{voice.SlotQuery: "dentist"},
		},
		{
			name:   "screen name",
			intent: voice.IntentOpenScreen,
			text:   "open the meals screen",
			want:   map[string]string{voice.SlotScreen: "meals"},
		},
		{
			name:   "small talk keeps the utterance as query",
			intent: voice.IntentSmallTalkQnA,
			text:   "thanks!",
			want:   map[string]string{voice.SlotQuery: "thanks"},
			absent: []string{voice.SlotTitle, voice.SlotDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slots.Extract(tt.intent, tt.text)
			for slot, want := range tt.want {
				if v, ok := got.Get(slot); !ok || v != want {
					t.Errorf("slot %s = %q (present=%v), want %q", slot, v, ok, want)
				}
			}
			for _, slot := range tt.absent {
				if v, ok := got.Get(slot); ok {
					t.Errorf("slot %s should be absent, got %q", slot, v)
				}
			}
		})
	}
}

func TestExtractEmptyInput(t *testing.T) {
	got := slots.Extract(voice.IntentCreateTask, "   ")
	if len(got) != 0 {
		t.Errorf("expected no slots for blank input, got %v", got)
	}
}
