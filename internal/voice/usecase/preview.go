package usecase

import (
	"household-relay/internal/voice"
	"household-relay/internal/voice/catalog"
)

// previewSlot pairs a high-value slot with its display label, in the order
// preview lines are rendered.
type previewSlot struct {
	slot  string
	label string
}

var previewSlots = []previewSlot{
	{voice.SlotTitle, "Title"},
	{voice.SlotDate, "Date"},
	{voice.SlotTime, "Time"},
	{voice.SlotAmount, "Amount"},
	{voice.SlotPerson, "Person"},
	{voice.SlotMember, "Member"},
	{voice.SlotPet, "Pet"},
	{voice.SlotLocation, "Location"},
	{voice.SlotRecurrence, "Repeats"},
	{voice.SlotItem, "Item"},
	{voice.SlotRange, "Range"},
}

// previewLines renders the human-readable action summary: one "Label: value"
// line per present high-value slot that belongs to the intent's schema, or
// the intent's canned line when none apply.
func previewLines(spec voice.IntentSpec, slots voice.SlotValues) []string {
	inSchema := make(map[string]bool, len(spec.RequiredSlots)+len(spec.OptionalSlots))
	for _, s := range spec.RequiredSlots {
		inSchema[s] = true
	}
	for _, s := range spec.OptionalSlots {
		inSchema[s] = true
	}

	var lines []string
	for _, p := range previewSlots {
		if !inSchema[p.slot] {
			continue
		}
		if v, ok := slots.Get(p.slot); ok {
			lines = append(lines, p.label+": "+v)
		}
	}
	if len(lines) == 0 {
		lines = []string{catalog.PreviewFallback(spec.Name)}
	}
	return lines
}
