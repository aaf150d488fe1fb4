package store_test

import (
	"testing"

	"household-relay/internal/model"
	"household-relay/internal/store"
)

func strPtr(s string) *string { return &s }

func TestTasks(t *testing.T) {
	t.Run("Add generates id and timestamp", func(t *testing.T) {
		s := store.New()
		task := s.AddTask(model.Task{Title: "Call the vet"})

		if task.ID == "" {
			t.Error("expected generated id")
		}
		if task.CreatedAt.IsZero() {
			t.Error("expected created timestamp")
		}
		if got := s.Tasks(); len(got) != 1 || got[0].Title != "Call the vet" {
			t.Errorf("store holds %v", got)
		}
	})

	t.Run("Add keeps caller-supplied id", func(t *testing.T) {
		s := store.New()
		task := s.AddTask(model.Task{ID: "keep-me", Title: "Laundry"})
		if task.ID != "keep-me" {
			t.Errorf("id = %q, want keep-me", task.ID)
		}
	})

	t.Run("Update patches only set fields", func(t *testing.T) {
		s := store.New()
		task := s.AddTask(model.Task{Title: "Laundry", DueDate: "Today"})

		got, ok := s.UpdateTask(task.ID, model.TaskPatch{DueDate: strPtr("Tomorrow")})
		if !ok {
			t.Fatal("update should find the task")
		}
		if got.DueDate != "Tomorrow" || got.Title != "Laundry" {
			t.Errorf("patched task = %+v", got)
		}
	})

	t.Run("Toggle flips completion both ways", func(t *testing.T) {
		s := store.New()
		task := s.AddTask(model.Task{Title: "Dishes"})

		got, _ := s.ToggleTask(task.ID)
		if !got.Completed {
			t.Error("first toggle should complete the task")
		}
		got, _ = s.ToggleTask(task.ID)
		if got.Completed {
			t.Error("second toggle should reopen the task")
		}
	})

	t.Run("Delete returns the removed task", func(t *testing.T) {
		s := store.New()
		task := s.AddTask(model.Task{Title: "Dishes"})

		removed, ok := s.DeleteTask(task.ID)
		if !ok || removed.Title != "Dishes" {
			t.Fatalf("delete returned %v %v", removed, ok)
		}
		if got := s.Tasks(); len(got) != 0 {
			t.Errorf("store still holds %d tasks", len(got))
		}
	})

	t.Run("Delete then re-add restores original id", func(t *testing.T) {
		s := store.New()
		task := s.AddTask(model.Task{Title: "Dishes"})
		removed, _ := s.DeleteTask(task.ID)

		restored := s.AddTask(removed)
		if restored.ID != task.ID {
			t.Errorf("restored id = %q, want %q", restored.ID, task.ID)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		s := store.New()
		if _, ok := s.UpdateTask("missing", model.TaskPatch{}); ok {
			t.Error("update should miss")
		}
		if _, ok := s.ToggleTask("missing"); ok {
			t.Error("toggle should miss")
		}
		if _, ok := s.DeleteTask("missing"); ok {
			t.Error("delete should miss")
		}
	})
}

func TestEvents(t *testing.T) {
	s := store.New()
	ev := s.AddEvent(model.Event{Title: "Dentist", Date: "Tomorrow"})
	if ev.ID == "" {
		t.Fatal("expected generated id")
	}

	got, ok := s.UpdateEvent(ev.ID, model.EventPatch{Date: strPtr("Friday")})
	if !ok || got.Date != "Friday" || got.Title != "Dentist" {
		t.Errorf("patched event = %+v", got)
	}

	removed, ok := s.DeleteEvent(ev.ID)
	if !ok || removed.Title != "Dentist" {
		t.Errorf("delete returned %v %v", removed, ok)
	}
	if len(s.Events()) != 0 {
		t.Error("store should be empty")
	}
}

func TestSeedAndHousehold(t *testing.T) {
	s := store.New()
	s.Seed(
		[]model.Task{{ID: "t1", Title: "Laundry"}},
		[]model.Event{{ID: "e1", Title: "Dentist"}},
		[]model.Member{{Name: "Mom", Role: "parent"}},
	)

	if len(s.Tasks()) != 1 || len(s.Events()) != 1 {
		t.Error("seed should populate tasks and events")
	}
	members := s.Members()
	if len(members) != 1 || members[0].Name != "Mom" {
		t.Errorf("members = %v", members)
	}

	s.AddInboxMessage(model.InboxMessage{From: "Dad", Text: "Dinner is ready"})
	inbox := s.Inbox()
	if len(inbox) != 1 || inbox[0].CreatedAt.IsZero() {
		t.Errorf("inbox = %v", inbox)
	}
}

func TestCopySemantics(t *testing.T) {
	s := store.New()
	s.AddTask(model.Task{Title: "Laundry"})

	got := s.Tasks()
	got[0].Title = "mutated"

	if s.Tasks()[0].Title != "Laundry" {
		t.Error("Tasks should return a copy")
	}
}
