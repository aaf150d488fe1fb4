package trace_test

import (
	"fmt"
	"testing"

	"household-relay/internal/trace"
)

func TestStoreRecord(t *testing.T) {
	t.Run("Stamps id and timestamp", func(t *testing.T) {
		s := trace.New(10, true)
		s.Record(trace.Entry{Transcript: "add milk", Intent: "add_grocery_item"})

		got := s.Entries()
		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(got))
		}
		if got[0].ID == "" || got[0].Timestamp.IsZero() {
			t.Error("entry should be stamped with id and timestamp")
		}
		if got[0].Transcript != "add milk" {
			t.Errorf("transcript = %q", got[0].Transcript)
		}
	})

	t.Run("Evicts oldest at capacity", func(t *testing.T) {
		s := trace.New(3, true)
		for i := 0; i < 5; i++ {
			s.Record(trace.Entry{Transcript: fmt.Sprintf("utterance %d", i)})
		}

		got := s.Entries()
		if len(got) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(got))
		}
		if got[0].Transcript != "utterance 2" || got[2].Transcript != "utterance 4" {
			t.Errorf("wrong survivors: %q ... %q", got[0].Transcript, got[2].Transcript)
		}
	})

	t.Run("Records while capture disabled", func(t *testing.T) {
		s := trace.New(10, false)
		s.Record(trace.Entry{Transcript: "still captured"})

		got := s.Entries()
		if len(got) != 1 {
			t.Fatalf("expected 1 entry with capture off, got %d", len(got))
		}
		if got[0].Transcript != "still captured" {
			t.Errorf("transcript = %q", got[0].Transcript)
		}
	})

	t.Run("Enabled flag is a view hint only", func(t *testing.T) {
		s := trace.New(10, false)
		if s.Enabled() {
			t.Fatal("store should report disabled")
		}
		s.SetEnabled(true)
		if !s.Enabled() {
			t.Fatal("store should report enabled")
		}
		s.SetEnabled(false)
		s.Record(trace.Entry{Transcript: "captured"})
		if got := s.Entries(); len(got) != 1 {
			t.Errorf("expected 1 entry regardless of flag, got %d", len(got))
		}
	})
}

func TestStoreClear(t *testing.T) {
	s := trace.New(10, true)
	s.Record(trace.Entry{Transcript: "one"})
	s.Clear()

	if got := s.Entries(); len(got) != 0 {
		t.Errorf("expected empty store after clear, got %d entries", len(got))
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := trace.New(10, true)
	var seen []trace.Entry
	cancel := s.Subscribe(func(e trace.Entry) { seen = append(seen, e) })

	s.Record(trace.Entry{Transcript: "first"})
	cancel()
	s.Record(trace.Entry{Transcript: "second"})

	if len(seen) != 1 || seen[0].Transcript != "first" {
		t.Errorf("listener saw %v", seen)
	}
}

func TestStoreDefaultCapacity(t *testing.T) {
	s := trace.New(0, true)
	for i := 0; i < trace.DefaultCapacity+5; i++ {
		s.Record(trace.Entry{})
	}
	if got := len(s.Entries()); got != trace.DefaultCapacity {
		t.Errorf("expected capacity %d, got %d entries", trace.DefaultCapacity, got)
	}
}
