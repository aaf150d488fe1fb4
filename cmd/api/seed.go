package main

import (
	"household-relay/internal/model"
	"household-relay/internal/store"
)

// seedHousehold loads a small demo household so the API answers usefully on
// first boot.
func seedHousehold(s *store.Store) {
	s.Seed(
		[]model.Task{
			{ID: "seed-task-laundry", Title: "Laundry", DueDate: "Today"},
			{ID: "seed-task-trash", Title: "Take out trash", DueDate: "Tomorrow"},
			{ID: "seed-task-plants", Title: "Water the plants", Recurrence: "Every week"},
		},
		[]model.Event{
			{ID: "seed-event-dentist", Title: "Dentist appointment", Date: "Friday", Time: "3 PM"},
			{ID: "seed-event-soccer", Title: "Soccer practice", Date: "This weekend", Location: "park"},
		},
		[]model.Member{
			{Name: "Mom", Role: "parent"},
			{Name: "Dad", Role: "parent"},
			{Name: "Sam", Role: "child"},
		},
	)
}
