package usecase_test

import (
	"context"
	"testing"

	"household-relay/internal/model"
	"household-relay/internal/voice"
)

func TestExecuteTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("Create task with undo", func(t *testing.T) {
		f := newFixture(t)
		interp := f.uc.Route(ctx, "remind me to call the vet tomorrow", voice.NewRouteContext("/tasks", true, ""))

		out := f.uc.Execute(ctx, interp)

		if out.Informational {
			t.Error("create_task mutates, must not be informational")
		}
		if out.Undo == nil {
			t.Fatal("create_task must offer undo")
		}
		tasks := f.store.Tasks()
		if len(tasks) != 1 || tasks[0].Title != "call the vet" {
			t.Fatalf("store = %v", tasks)
		}
		if tasks[0].DueDateISO == "" {
			t.Error("relative date should resolve to an ISO due date")
		}

		out.Undo.Revert()
		if got := f.store.Tasks(); len(got) != 0 {
			t.Errorf("undo left %d tasks", len(got))
		}
	})

	t.Run("Delete then undo restores the task set", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed([]model.Task{
			{ID: "t1", Title: "Walk the dog"},
			{ID: "t2", Title: "Laundry"},
		}, nil, nil)

		interp := f.uc.Route(ctx, "delete the laundry task", voice.NewRouteContext("/tasks", true, ""))
		if interp.Intent != voice.IntentDeleteTask {
			t.Fatalf("intent = %s", interp.Intent)
		}
		if !interp.RequiresConfirmation {
			t.Error("delete_task should require confirmation")
		}

		out := f.uc.Execute(ctx, interp)
		if out.Undo == nil {
			t.Fatal("delete must offer undo")
		}
		if len(f.store.Tasks()) != 1 {
			t.Fatal("delete did not remove the task")
		}

		out.Undo.Revert()
		tasks := f.store.Tasks()
		if len(tasks) != 2 {
			t.Fatalf("undo restored %d tasks", len(tasks))
		}
		found := false
		for _, task := range tasks {
			if task.ID == "t2" && task.Title == "Laundry" {
				found = true
			}
		}
		if !found {
			t.Error("undo should restore the task under its original id")
		}
	})

	t.Run("Delete miss is informational", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed([]model.Task{{ID: "t1", Title: "Laundry"}}, nil, nil)

		interp := f.uc.Route(ctx, "delete bogus task that does not exist", voice.NewRouteContext("/tasks", true, ""))
		if interp.Intent != voice.IntentDeleteTask {
			t.Fatalf("intent = %s", interp.Intent)
		}

		out := f.uc.Execute(ctx, interp)
		if !out.Informational {
			t.Error("lookup miss must be informational")
		}
		if out.Undo != nil {
			t.Error("lookup miss must not offer undo")
		}
		if len(f.store.Tasks()) != 1 {
			t.Error("lookup miss must not mutate the store")
		}
	})

	t.Run("Complete toggles and undo reopens", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed([]model.Task{{ID: "t1", Title: "Take out trash"}}, nil, nil)

		interp := f.uc.Route(ctx, "mark take out trash as done", voice.NewRouteContext("/tasks", true, ""))
		out := f.uc.Execute(ctx, interp)

		if !f.store.Tasks()[0].Completed {
			t.Fatal("task should be completed")
		}
		out.Undo.Revert()
		if f.store.Tasks()[0].Completed {
			t.Error("undo should reopen the task")
		}
	})

	t.Run("Reschedule and undo restores prior date", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed([]model.Task{{ID: "t1", Title: "Dentist", DueDate: "Today", DueDateISO: "2026-08-28"}}, nil, nil)

		interp := f.uc.Route(ctx, "reschedule the dentist task to friday", voice.NewRouteContext("/tasks", true, ""))
		out := f.uc.Execute(ctx, interp)

		moved := f.store.Tasks()[0]
		if moved.DueDate != "Friday" {
			t.Fatalf("due date = %q", moved.DueDate)
		}
		out.Undo.Revert()
		restored := f.store.Tasks()[0]
		if restored.DueDate != "Today" || restored.DueDateISO != "2026-08-28" {
			t.Errorf("undo restored %+v", restored)
		}
	})
}

func TestExecuteEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Create event resolves date", func(t *testing.T) {
		f := newFixture(t)
		interp := f.uc.Route(ctx, "schedule a dentist appointment tomorrow at 3pm", voice.NewRouteContext("/calendar", true, ""))
		if interp.Intent != voice.IntentCreateEvent {
			t.Fatalf("intent = %s", interp.Intent)
		}

		out := f.uc.Execute(ctx, interp)
		if out.Undo == nil {
			t.Fatal("create_event must offer undo")
		}
		events := f.store.Events()
		if len(events) != 1 || events[0].Time != "3 PM" || events[0].DateISO == "" {
			t.Fatalf("events = %v", events)
		}

		out.Undo.Revert()
		if len(f.store.Events()) != 0 {
			t.Error("undo should remove the event")
		}
	})

	t.Run("Move event and undo", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed(nil, []model.Event{{ID: "e1", Title: "Dentist appointment", Date: "Today", DateISO: "2026-08-28", Time: "9 AM"}}, nil)

		interp := f.uc.Route(ctx, "move the dentist appointment to friday", voice.NewRouteContext("/calendar", true, ""))
		out := f.uc.Execute(ctx, interp)

		moved := f.store.Events()[0]
		if moved.Date != "Friday" {
			t.Fatalf("date = %q", moved.Date)
		}
		out.Undo.Revert()
		restored := f.store.Events()[0]
		if restored.Date != "Today" || restored.Time != "9 AM" {
			t.Errorf("undo restored %+v", restored)
		}
	})
}

func TestExecuteDeferred(t *testing.T) {
	ctx := context.Background()

	t.Run("Grocery item enqueues for meals", func(t *testing.T) {
		f := newFixture(t)
		interp := f.uc.Route(ctx, "add milk to the grocery list", voice.NewRouteContext("/meals", true, ""))

		out := f.uc.Execute(ctx, interp)

		if out.Informational {
			t.Error("deferred intents are not informational")
		}
		if out.Undo != nil {
			t.Error("deferred intents carry no undo")
		}

		actions := f.queue.Consume(voice.DomainMeals)
		if len(actions) != 1 {
			t.Fatalf("expected 1 pending action, got %d", len(actions))
		}
		if actions[0].Type != "add_grocery_item" || actions[0].Payload["item"] != "milk" {
			t.Errorf("action = %+v", actions[0])
		}
		if len(f.routes) != 1 || f.routes[0] != voice.RouteMeals {
			t.Errorf("navigated to %v", f.routes)
		}
	})

	t.Run("Vet visit creates a calendar stub", func(t *testing.T) {
		f := newFixture(t)
		interp := f.uc.Route(ctx, "schedule a vet visit for rex next week", voice.NewRouteContext("/pets", true, ""))
		if interp.Intent != voice.IntentScheduleVetVisit {
			t.Fatalf("intent = %s", interp.Intent)
		}

		f.uc.Execute(ctx, interp)

		actions := f.queue.Consume(voice.DomainPets)
		if len(actions) != 1 || actions[0].Payload["pet"] != "Rex" {
			t.Fatalf("actions = %+v", actions)
		}
		if actions[0].Payload["reason"] != "Routine check" {
			t.Errorf("reason = %v", actions[0].Payload["reason"])
		}
		events := f.store.Events()
		if len(events) != 1 || events[0].Title != "Vet visit: Rex" {
			t.Errorf("expected a visible event stub, got %v", events)
		}
	})

	t.Run("Chore assignment creates a task stub", func(t *testing.T) {
		f := newFixture(t)
		interp := f.uc.Route(ctx, "assign the dishes to sam", voice.NewRouteContext("/family", true, ""))

		f.uc.Execute(ctx, interp)

		actions := f.queue.Consume(voice.DomainFamily)
		if len(actions) != 1 || actions[0].Payload["memberName"] != "Sam" {
			t.Fatalf("actions = %+v", actions)
		}
		tasks := f.store.Tasks()
		if len(tasks) != 1 || tasks[0].Assignee != "Sam" || tasks[0].Title != "dishes" {
			t.Errorf("expected a visible task stub, got %v", tasks)
		}
	})

	t.Run("Expense payload carries canonical day", func(t *testing.T) {
		f := newFixture(t)
		interp := f.uc.Route(ctx, "i spent $40 on groceries", voice.NewRouteContext("/finances", true, ""))

		f.uc.Execute(ctx, interp)

		actions := f.queue.Consume(voice.DomainFinances)
		if len(actions) != 1 {
			t.Fatalf("expected 1 action, got %d", len(actions))
		}
		p := actions[0].Payload
		if p["amount"] != "$40" || p["category"] != "Groceries" {
			t.Errorf("payload = %v", p)
		}
		if day, _ := p["dayISO"].(string); len(day) != 10 {
			t.Errorf("dayISO = %v, want 2006-01-02 form", p["dayISO"])
		}
	})
}

func TestExecuteInformational(t *testing.T) {
	ctx := context.Background()

	t.Run("List tasks counts open items", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed([]model.Task{
			{ID: "t1", Title: "Laundry"},
			{ID: "t2", Title: "Dishes", Completed: true},
		}, nil, nil)

		interp := f.uc.Route(ctx, "show my tasks", voice.NewRouteContext("/tasks", true, ""))
		out := f.uc.Execute(ctx, interp)

		if !out.Informational || out.Undo != nil {
			t.Error("list_tasks is read-only")
		}
		if out.Message != "You have 1 open tasks." {
			t.Errorf("message = %q", out.Message)
		}
	})

	t.Run("Search finds across tasks and events", func(t *testing.T) {
		f := newFixture(t)
		f.store.Seed(
			[]model.Task{{ID: "t1", Title: "Call the dentist"}},
			[]model.Event{{ID: "e1", Title: "Dentist appointment"}},
			nil,
		)

		interp := f.uc.Route(ctx, "search for the dentist", voice.NewRouteContext("/", true, ""))
		out := f.uc.Execute(ctx, interp)

		if !out.Informational {
			t.Error("search is read-only")
		}
		if out.Message != `Found 2 matches for "dentist".` {
			t.Errorf("message = %q", out.Message)
		}
	})

	t.Run("Open screen navigates", func(t *testing.T) {
		f := newFixture(t)
		interp := f.uc.Route(ctx, "open the meals screen", voice.NewRouteContext("/", true, ""))
		if interp.Intent != voice.IntentOpenScreen {
			t.Fatalf("intent = %s", interp.Intent)
		}

		out := f.uc.Execute(ctx, interp)
		if !out.Informational {
			t.Error("open_screen mutates nothing")
		}
		if len(f.routes) != 1 || f.routes[0] != voice.RouteMeals {
			t.Errorf("navigated to %v", f.routes)
		}
	})

	t.Run("Unknown intent is harmless", func(t *testing.T) {
		f := newFixture(t)
		interp := f.uc.Route(ctx, "hmm whatever", voice.NewRouteContext("/", true, ""))
		out := f.uc.Execute(ctx, interp)

		if !out.Informational || out.Undo != nil {
			t.Error("unknown_intent must be a no-op")
		}
		if out.Message == "" {
			t.Error("unknown_intent should still say something")
		}
	})
}
