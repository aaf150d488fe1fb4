package catalog

import "household-relay/internal/voice"

// buildSpecs returns the full intent table. Order matters only as a
// deterministic tiebreak when two intents score identically.
func buildSpecs() []voice.IntentSpec {
	return []voice.IntentSpec{
		// ---- Tasks ----
		{
			Name:          voice.IntentCreateTask,
			Domain:        voice.DomainTasks,
			HandlerDomain: voice.DomainTasks,
			Description:   "Create a to-do item",
			RequiredSlots: []string{voice.SlotTitle},
			OptionalSlots: []string{voice.SlotDate, voice.SlotTime, voice.SlotPerson, voice.SlotRecurrence},
			Examples: []string{
				"remind me to call the vet tomorrow",
				"add a task to buy batteries",
				"i need to water the plants",
			},
			MatchRules: []voice.MatchRule{
				rule(`^remind me to\b`),
				rule(`^(add|create)( a)?( new)? task\b`),
				rule(`^i need to\b`),
			},
			Keywords: []string{"remind", "to-do", "todo"},
		},
		{
			Name:          voice.IntentCompleteTask,
			Domain:        voice.DomainTasks,
			HandlerDomain: voice.DomainTasks,
			Description:   "Mark a to-do item as done",
			RequiredSlots: []string{voice.SlotTaskRef},
			Examples: []string{
				"mark take out trash as done",
				"i finished the laundry",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(mark|check)\b.*\b(done|complete|completed|off)\b`),
				rule(`\b(i('m| am)? )?(finished|completed|done with)\b`),
			},
			Keywords: []string{"done", "finished", "complete"},
		},
		{
			Name:                 voice.IntentDeleteTask,
			Domain:               voice.DomainTasks,
			HandlerDomain:        voice.DomainTasks,
			Description:          "Delete a to-do item",
			RequiredSlots:        []string{voice.SlotTaskRef},
			ConfirmationRequired: true,
			Examples: []string{
				"delete the laundry task",
				"remove the dentist task",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(delete|remove|cancel|clear)\b.*\btasks?\b`),
			},
			Keywords: []string{"delete", "remove"},
		},
		{
			Name:          voice.IntentRescheduleTask,
			Domain:        voice.DomainTasks,
			HandlerDomain: voice.DomainTasks,
			Description:   "Move a to-do item to another day",
			RequiredSlots: []string{voice.SlotTaskRef, voice.SlotDate},
			OptionalSlots: []string{voice.SlotTime},
			Examples: []string{
				"reschedule the dentist task to friday",
				"postpone my homework task",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(reschedule|postpone|push|bump)\b.*\btask\b`),
				rule(`\bpostpone\b`),
			},
			Keywords: []string{"reschedule", "postpone", "later"},
		},
		{
			Name:          voice.IntentListTasks,
			Domain:        voice.DomainTasks,
			HandlerDomain: voice.DomainTasks,
			Description:   "List open to-do items",
			OptionalSlots: []string{voice.SlotDate, voice.SlotPerson},
			Examples: []string{
				"what are my tasks today",
				"show my tasks",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(what|show|list)\b.*\btasks?\b`),
			},
			Keywords: []string{"tasks"},
		},

		// ---- Calendar ----
		{
			Name:          voice.IntentCreateEvent,
			Domain:        voice.DomainCalendar,
			HandlerDomain: voice.DomainCalendar,
			Description:   "Put an event on the calendar",
			RequiredSlots: []string{voice.SlotTitle, voice.SlotDate},
			OptionalSlots: []string{voice.SlotTime, voice.SlotLocation, voice.SlotPerson},
			Examples: []string{
				"schedule a dentist appointment tomorrow at 3pm",
				"add soccer practice to the calendar",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(schedule|book)\b.*\b(appointment|meeting|event|party|practice|game)\b`),
				rule(`\badd\b.*\bcalendar\b`),
			},
			Keywords: []string{"schedule", "calendar", "appointment", "event"},
		},
		{
			Name:                 voice.IntentDeleteEvent,
			Domain:               voice.DomainCalendar,
			HandlerDomain:        voice.DomainCalendar,
			Description:          "Remove an event from the calendar",
			RequiredSlots:        []string{voice.SlotEventRef},
			ConfirmationRequired: true,
			Examples: []string{
				"cancel the dentist appointment",
				"delete the soccer practice event",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(delete|remove|cancel)\b.*\b(event|meeting|appointment|practice)\b`),
			},
			Keywords: []string{"cancel"},
		},
		{
			Name:          voice.IntentMoveEvent,
			Domain:        voice.DomainCalendar,
			HandlerDomain: voice.DomainCalendar,
			Description:   "Move an event to another day or time",
			RequiredSlots: []string{voice.SlotEventRef, voice.SlotDate},
			OptionalSlots: []string{voice.SlotTime},
			Examples: []string{
				"move the dentist appointment to friday",
				"push the meeting to next week",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(move|push|reschedule|bump)\b.*\b(event|meeting|appointment|practice)\b`),
			},
			Keywords: []string{"move", "push"},
		},
		{
			Name:          voice.IntentCheckCalendar,
			Domain:        voice.DomainCalendar,
			HandlerDomain: voice.DomainCalendar,
			Description:   "Look at what is on the calendar",
			OptionalSlots: []string{voice.SlotDate, voice.SlotRange},
			Examples: []string{
				"what's on my calendar today",
				"am i free on friday",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bwhat('s| is)\b.*\b(calendar|schedule|agenda)\b`),
				rule(`\b(am i|are we)\b.*\b(free|busy)\b`),
			},
			Keywords: []string{"calendar", "agenda", "free"},
		},

		// ---- Meals ----
		{
			Name:          voice.IntentPlanMeal,
			Domain:        voice.DomainMeals,
			HandlerDomain: voice.DomainMeals,
			Description:   "Plan a meal for a day",
			RequiredSlots: []string{voice.SlotTitle, voice.SlotDate},
			OptionalSlots: []string{voice.SlotMealType},
			Examples: []string{
				"plan tacos for dinner tomorrow",
				"we're having spaghetti for dinner",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bplan\b.*\b(breakfast|lunch|dinner|meal)\b`),
				rule(`\b(having|have|make|making|cook|cooking)\b.*\bfor (breakfast|lunch|dinner)\b`),
			},
			Keywords: []string{"dinner", "meal", "cook", "plan"},
		},
		{
			Name:          voice.IntentAddGroceryItem,
			Domain:        voice.DomainMeals,
			HandlerDomain: voice.DomainMeals,
			Description:   "Add an item to the grocery list",
			RequiredSlots: []string{voice.SlotItem},
			Examples: []string{
				"add milk to the grocery list",
				"we're out of eggs",
			},
			MatchRules: []voice.MatchRule{
				rule(`\badd\b.*\b(grocery|groceries|shopping)\b`),
				rule(`\bwe('re| are) out of\b`),
			},
			Keywords: []string{"grocery", "groceries", "shopping"},
		},
		{
			Name:          voice.IntentRemoveGroceryItem,
			Domain:        voice.DomainMeals,
			HandlerDomain: voice.DomainMeals,
			Description:   "Take an item off the grocery list",
			RequiredSlots: []string{voice.SlotItem},
			Examples: []string{
				"remove milk from the grocery list",
				"take bread off the shopping list",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(remove|take)\b.*\b(grocery|groceries|shopping)\b`),
			},
			Keywords: []string{"grocery", "shopping"},
		},
		{
			Name:          voice.IntentShowMealPlan,
			Domain:        voice.DomainMeals,
			HandlerDomain: voice.DomainMeals,
			Description:   "Show the planned meals",
			OptionalSlots: []string{voice.SlotRange},
			Examples: []string{
				"what's for dinner this week",
				"show the meal plan",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bwhat('s| is) for dinner\b`),
				rule(`\b(show|what('s| is))\b.*\bmeal plan\b`),
			},
			Keywords: []string{"meal plan"},
		},
		{
			Name:          voice.IntentSuggestMeal,
			Domain:        voice.DomainMeals,
			HandlerDomain: voice.DomainMeals,
			Description:   "Suggest something to cook",
			OptionalSlots: []string{voice.SlotMealType},
			Examples: []string{
				"what should we cook tonight",
				"suggest a dinner idea",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bwhat should (i|we) (cook|make|eat)\b`),
				rule(`\b(suggest|recommend)\b.*\b(meal|dinner|lunch|recipe)\b`),
				rule(`\b(dinner|meal) ideas?\b`),
			},
			Keywords: []string{"suggest", "idea"},
		},

		// ---- Finances ----
		{
			Name:          voice.IntentLogExpense,
			Domain:        voice.DomainFinances,
			HandlerDomain: voice.DomainFinances,
			Description:   "Record a purchase",
			RequiredSlots: []string{voice.SlotAmount},
			OptionalSlots: []string{voice.SlotCategory, voice.SlotTitle, voice.SlotDate},
			Examples: []string{
				"i spent $40 on groceries",
				"log a $12 expense for lunch",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(i )?(spent|paid)\b.*\d`),
				rule(`\blog\b.*\b(expense|purchase)\b`),
			},
			Keywords: []string{"spent", "expense", "bought"},
		},
		{
			Name:          voice.IntentAddBill,
			Domain:        voice.DomainFinances,
			HandlerDomain: voice.DomainFinances,
			Description:   "Track an upcoming bill",
			RequiredSlots: []string{voice.SlotTitle, voice.SlotAmount, voice.SlotDate},
			Examples: []string{
				"add the electric bill for $80 due friday",
				"new bill: internet $60 due next week",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(add|new)\b.*\bbill\b`),
				rule(`\bbill\b.*\bdue\b`),
			},
			Keywords: []string{"bill", "due"},
		},
		{
			Name:          voice.IntentMarkBillPaid,
			Domain:        voice.DomainFinances,
			HandlerDomain: voice.DomainFinances,
			Description:   "Mark a bill as paid",
			RequiredSlots: []string{voice.SlotTitle},
			Examples: []string{
				"mark the electric bill as paid",
				"i paid the rent",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bpaid\b.*\b(bill|rent|mortgage)\b`),
				rule(`\bbill\b.*\bpaid\b`),
			},
			Keywords: []string{"paid"},
		},
		{
			Name:          voice.IntentShowSpending,
			Domain:        voice.DomainFinances,
			HandlerDomain: voice.DomainFinances,
			Description:   "Show spending overview",
			OptionalSlots: []string{voice.SlotRange, voice.SlotCategory},
			Examples: []string{
				"how much did we spend this month",
				"show our spending",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bhow much\b.*\b(spend|spent|spending)\b`),
				rule(`\b(show|view)\b.*\b(spending|expenses|budget)\b`),
			},
			Keywords: []string{"spending", "expenses", "budget"},
		},
		{
			Name:          voice.IntentSetBudget,
			Domain:        voice.DomainFinances,
			HandlerDomain: voice.DomainFinances,
			Description:   "Set a budget amount",
			RequiredSlots: []string{voice.SlotAmount},
			OptionalSlots: []string{voice.SlotCategory},
			Examples: []string{
				"set the grocery budget to $500",
				"set a budget of $200 for gas",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bset\b.*\bbudget\b`),
			},
			Keywords: []string{"budget"},
		},

		// ---- Pets ----
		{
			Name:          voice.IntentLogPetFeeding,
			Domain:        voice.DomainPets,
			HandlerDomain: voice.DomainPets,
			Description:   "Log a pet feeding",
			RequiredSlots: []string{voice.SlotPet},
			OptionalSlots: []string{voice.SlotTime},
			Examples: []string{
				"i fed rex this morning",
				"log that the dog was fed",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(i )?fed\b`),
				rule(`\blog\b.*\b(fed|feeding)\b`),
			},
			Keywords: []string{"fed", "feeding", "kibble"},
		},
		{
			Name:          voice.IntentLogPetWalk,
			Domain:        voice.DomainPets,
			HandlerDomain: voice.DomainPets,
			Description:   "Log a pet walk",
			RequiredSlots: []string{voice.SlotPet},
			OptionalSlots: []string{voice.SlotTime},
			Examples: []string{
				"i walked the dog",
				"log a walk for rex",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(i )?walked\b`),
				rule(`\blog\b.*\bwalk\b`),
			},
			Keywords: []string{"walk", "walked", "leash"},
		},
		{
			Name:          voice.IntentScheduleVetVisit,
			Domain:        voice.DomainPets,
			HandlerDomain: voice.DomainPets,
			Description:   "Schedule a vet visit",
			RequiredSlots: []string{voice.SlotPet, voice.SlotDate},
			OptionalSlots: []string{voice.SlotTime, voice.SlotReason},
			Examples: []string{
				"schedule a vet visit for rex next week",
				"book the cat a vet appointment",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(schedule|book)\b.*\bvet\b`),
				rule(`\bvet (visit|appointment|checkup)\b`),
			},
			Keywords: []string{"vet", "checkup"},
		},
		{
			Name:          voice.IntentShowPetSchedule,
			Domain:        voice.DomainPets,
			HandlerDomain: voice.DomainPets,
			Description:   "Show the pet care schedule",
			Examples: []string{
				"show the pet schedule",
				"when is the dog's next feeding",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bpet('s)? schedule\b`),
				rule(`\bnext (feeding|walk|vet)\b`),
			},
			Keywords: []string{"pet"},
		},

		// ---- Notes ----
		{
			Name:          voice.IntentCreateNote,
			Domain:        voice.DomainNotes,
			HandlerDomain: voice.DomainNotes,
			Description:   "Save a quick note",
			RequiredSlots: []string{voice.SlotTitle},
			Examples: []string{
				"note that the wifi password changed",
				"jot down gift ideas for mom",
			},
			MatchRules: []voice.MatchRule{
				rule(`^(note|jot|write)\b`),
				rule(`\b(jot|note) (that|down)\b`),
			},
			Keywords: []string{"note", "jot"},
		},
		{
			Name:          voice.IntentSaveLink,
			Domain:        voice.DomainNotes,
			HandlerDomain: voice.DomainNotes,
			Description:   "Save a link to notes",
			RequiredSlots: []string{voice.SlotURL},
			OptionalSlots: []string{voice.SlotTitle},
			Examples: []string{
				"save this link https://example.com/recipe",
				"bookmark https://example.com",
			},
			MatchRules: []voice.MatchRule{
				rule(`https?://`),
				rule(`\b(save|bookmark)\b.*\blink\b`),
			},
			Keywords: []string{"link", "bookmark", "http"},
		},
		{
			Name:          voice.IntentSearchNotes,
			Domain:        voice.DomainNotes,
			HandlerDomain: voice.DomainNotes,
			Description:   "Search saved notes",
			RequiredSlots: []string{voice.SlotQuery},
			Examples: []string{
				"search my notes for wifi",
				"find the note about the plumber",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(search|find|look)\b.*\bnotes?\b`),
			},
			Keywords: []string{"notes"},
		},

		// ---- Family ----
		{
			Name:          voice.IntentAddFamilyMember,
			Domain:        voice.DomainFamily,
			HandlerDomain: voice.DomainFamily,
			Description:   "Add a household member",
			RequiredSlots: []string{voice.SlotMember},
			Examples: []string{
				"add grandma to the family",
				"add a new family member named joe",
			},
			MatchRules: []voice.MatchRule{
				rule(`\badd\b.*\b(family|member|grandma|grandpa)\b`),
			},
			Keywords: []string{"family", "member"},
		},
		{
			Name:          voice.IntentAssignChore,
			Domain:        voice.DomainFamily,
			HandlerDomain: voice.DomainFamily,
			Description:   "Assign a chore to a member",
			RequiredSlots: []string{voice.SlotMember, voice.SlotTitle},
			OptionalSlots: []string{voice.SlotDate, voice.SlotRecurrence},
			Examples: []string{
				"assign the dishes to sam",
				"give mom the laundry chore",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bassign\b`),
				rule(`\b(give|hand)\b.*\bchore\b`),
			},
			Keywords: []string{"chore", "assign"},
		},
		{
			Name:          voice.IntentSendFamilyMessage,
			Domain:        voice.DomainFamily,
			HandlerDomain: voice.DomainFamily,
			Description:   "Send a message to a member",
			RequiredSlots: []string{voice.SlotMember, voice.SlotTitle},
			Examples: []string{
				"tell dad dinner is ready",
				"message sam to come home",
			},
			MatchRules: []voice.MatchRule{
				rule(`^(tell|text|message)\b`),
			},
			Keywords: []string{"tell", "message"},
		},
		{
			Name:          voice.IntentShowFamilyHub,
			Domain:        voice.DomainFamily,
			HandlerDomain: voice.DomainFamily,
			Description:   "Show the family hub",
			Examples: []string{
				"show the family hub",
				"who's home right now",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bfamily hub\b`),
				rule(`\bwho('s| is) home\b`),
			},
			Keywords: []string{"family", "home"},
		},

		// ---- System ----
		{
			Name:          voice.IntentShowSummary,
			Domain:        voice.DomainSystem,
			HandlerDomain: voice.DomainSystem,
			Description:   "Summarize the household day",
			OptionalSlots: []string{voice.SlotRange},
			Examples: []string{
				"give me today's summary",
				"catch me up",
			},
			MatchRules: []voice.MatchRule{
				rule(`\b(summary|summarize|recap)\b`),
				rule(`\bcatch me up\b`),
			},
			Keywords: []string{"summary", "recap"},
		},
		{
			Name:          voice.IntentWhatsNext,
			Domain:        voice.DomainSystem,
			HandlerDomain: voice.DomainSystem,
			Description:   "Show the next upcoming items",
			Examples: []string{
				"what's next",
				"what's coming up today",
			},
			MatchRules: []voice.MatchRule{
				rule(`\bwhat('s| is) (next|up next|coming up)\b`),
			},
			Keywords: []string{"next"},
		},
		{
			Name:          voice.IntentSearchEverything,
			Domain:        voice.DomainSystem,
			HandlerDomain: voice.DomainSystem,
			Description:   "Search across the household",
			RequiredSlots: []string{voice.SlotQuery},
			Examples: []string{
				"search for the dentist",
				"find everything about soccer",
			},
			MatchRules: []voice.MatchRule{
				rule(`^(search|find|look up)\b`),
			},
			Keywords: []string{"search", "find"},
		},
		{
			Name:          voice.IntentOpenScreen,
			Domain:        voice.DomainSystem,
			HandlerDomain: voice.DomainSystem,
			Description:   "Navigate to a screen",
			RequiredSlots: []string{voice.SlotScreen},
			Examples: []string{
				"open the meals screen",
				"go to finances",
				"take me to the calendar",
			},
			MatchRules: []voice.MatchRule{
				rule(`^(open|go to|take me to)\b`),
			},
			Keywords: []string{"open", "go to"},
		},
		{
			Name:          voice.IntentHelp,
			Domain:        voice.DomainSystem,
			HandlerDomain: voice.DomainSystem,
			Description:   "Explain what the assistant can do",
			Examples: []string{
				"what can you do",
				"help",
			},
			MatchRules: []voice.MatchRule{
				rule(`^help\b`),
				rule(`\bwhat can you do\b`),
				rule(`\bhow do (i|you)\b`),
			},
			Keywords: []string{"help"},
		},
		{
			Name:          voice.IntentSmallTalkQnA,
			Domain:        voice.DomainSystem,
			HandlerDomain: voice.DomainSystem,
			Description:   "Greetings and small talk",
			Examples: []string{
				"thanks!",
				"hello",
				"good morning",
			},
			MatchRules: []voice.MatchRule{
				rule(`^(hi|hello|hey|yo|good (morning|afternoon|evening|night))\b`),
				rule(`\b(thanks|thank you|love you|you're the best)\b`),
			},
			Keywords: []string{"thanks", "hello", "hey"},
		},
		{
			Name:          voice.IntentUnknown,
			Domain:        voice.DomainSystem,
			HandlerDomain: voice.DomainSystem,
			Description:   "Unrecognized input",
		},
	}
}
