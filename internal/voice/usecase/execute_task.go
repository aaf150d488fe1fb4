package usecase

import (
	"fmt"
	"strings"

	"household-relay/internal/model"
	"household-relay/internal/voice"
)

func (uc *implUseCase) createTask(interp voice.Interpretation) voice.ExecutionOutcome {
	title := interp.Slots.GetOr(voice.SlotTitle, "New task")
	date := interp.Slots.GetOr(voice.SlotDate, "")

	task := model.Task{
		Title:      title,
		DueDate:    date,
		Time:       interp.Slots.GetOr(voice.SlotTime, ""),
		Assignee:   interp.Slots.GetOr(voice.SlotMember, interp.Slots.GetOr(voice.SlotPerson, "")),
		Recurrence: interp.Slots.GetOr(voice.SlotRecurrence, ""),
	}
	if date != "" {
		if iso, ok := uc.dateMath.ResolveISO(date, uc.now()); ok {
			task.DueDateISO = iso
		}
	}

	added := uc.deps.Tasks.AddTask(task)

	detail := ""
	if added.DueDate != "" {
		detail = "Due " + added.DueDate
	}
	return voice.ExecutionOutcome{
		Message: fmt.Sprintf("Added task %q.", added.Title),
		Detail:  detail,
		Route:   voice.RouteTasks,
		Explain: "Created a task in the shared list.",
		Undo: &voice.Undo{
			Label: "Remove " + added.Title,
			Revert: func() {
				uc.deps.Tasks.DeleteTask(added.ID)
			},
		},
	}
}

func (uc *implUseCase) completeTask(interp voice.Interpretation) voice.ExecutionOutcome {
	ref := interp.Slots.GetOr(voice.SlotTaskRef, interp.Slots.GetOr(voice.SlotTitle, ""))
	task, ok := uc.findTask(ref)
	if !ok {
		return taskNotFound(ref)
	}

	toggled, _ := uc.deps.Tasks.ToggleTask(task.ID)
	return voice.ExecutionOutcome{
		Message: fmt.Sprintf("Marked %q as done.", toggled.Title),
		Route:   voice.RouteTasks,
		Explain: fmt.Sprintf("Matched %q against the task list.", ref),
		Undo: &voice.Undo{
			Label: "Reopen " + toggled.Title,
			Revert: func() {
				uc.deps.Tasks.ToggleTask(toggled.ID)
			},
		},
	}
}

func (uc *implUseCase) deleteTask(interp voice.Interpretation) voice.ExecutionOutcome {
	ref := interp.Slots.GetOr(voice.SlotTaskRef, interp.Slots.GetOr(voice.SlotTitle, ""))
	task, ok := uc.findTask(ref)
	if !ok {
		return taskNotFound(ref)
	}

	removed, _ := uc.deps.Tasks.DeleteTask(task.ID)
	return voice.ExecutionOutcome{
		Message: fmt.Sprintf("Deleted %q.", removed.Title),
		Route:   voice.RouteTasks,
		Explain: fmt.Sprintf("Matched %q against the task list.", ref),
		Undo: &voice.Undo{
			Label: "Restore " + removed.Title,
			Revert: func() {
				// Re-adding the removed value keeps the original id and fields.
				uc.deps.Tasks.AddTask(removed)
			},
		},
	}
}

func (uc *implUseCase) rescheduleTask(interp voice.Interpretation) voice.ExecutionOutcome {
	ref := interp.Slots.GetOr(voice.SlotTaskRef, interp.Slots.GetOr(voice.SlotTitle, ""))
	task, ok := uc.findTask(ref)
	if !ok {
		return taskNotFound(ref)
	}

	newDate := interp.Slots.GetOr(voice.SlotDate, "Tomorrow")
	newISO := ""
	if iso, resolved := uc.dateMath.ResolveISO(newDate, uc.now()); resolved {
		newISO = iso
	}
	newTime := interp.Slots.GetOr(voice.SlotTime, task.Time)

	prevDate, prevISO, prevTime := task.DueDate, task.DueDateISO, task.Time
	updated, _ := uc.deps.Tasks.UpdateTask(task.ID, model.TaskPatch{
		DueDate:    &newDate,
		DueDateISO: &newISO,
		Time:       &newTime,
	})

	return voice.ExecutionOutcome{
		Message: fmt.Sprintf("Moved %q to %s.", updated.Title, newDate),
		Route:   voice.RouteTasks,
		Explain: fmt.Sprintf("Matched %q against the task list.", ref),
		Undo: &voice.Undo{
			Label: "Move back " + updated.Title,
			Revert: func() {
				uc.deps.Tasks.UpdateTask(updated.ID, model.TaskPatch{
					DueDate:    &prevDate,
					DueDateISO: &prevISO,
					Time:       &prevTime,
				})
			},
		},
	}
}

func (uc *implUseCase) listTasks() voice.ExecutionOutcome {
	tasks := uc.deps.Tasks.Tasks()
	open := 0
	for _, t := range tasks {
		if !t.Completed {
			open++
		}
	}

	out := informational(
		fmt.Sprintf("You have %d open tasks.", open),
		fmt.Sprintf("%d total, %d completed.", len(tasks), len(tasks)-open),
		"Counted the shared task list.",
	)
	out.Route = voice.RouteTasks
	return out
}

// findTask locates a task by fuzzy substring match on title, in either
// direction, case-insensitive. First match wins.
func (uc *implUseCase) findTask(ref string) (model.Task, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return model.Task{}, false
	}
	for _, t := range uc.deps.Tasks.Tasks() {
		title := strings.ToLower(t.Title)
		if title == "" {
			continue
		}
		if strings.Contains(title, ref) || strings.Contains(ref, title) {
			return t, true
		}
	}
	return model.Task{}, false
}

func taskNotFound(ref string) voice.ExecutionOutcome {
	return informational(
		fmt.Sprintf("I couldn't find a task matching %q.", ref),
		"Try the exact task title.",
		"No task title contained the reference phrase.",
	)
}
