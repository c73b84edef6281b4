package history

import (
	"fmt"
	"testing"
	"time"
)

func entry(i int) Entry {
	return Entry{
		Instruction:     fmt.Sprintf("instruction %d", i),
		InstructionType: "general",
		Summary:         fmt.Sprintf("summary %d", i),
		Timestamp:       time.Unix(int64(i), 0),
	}
}

func TestWindowBounded(t *testing.T) {
	w := NewWindow(10)

	for i := 0; i < 25; i++ {
		w.Push(entry(i))
	}

	if w.Len() != 10 {
		t.Fatalf("Len = %d, want 10", w.Len())
	}

	all := w.All()
	if all[0].Instruction != "instruction 15" {
		t.Errorf("oldest retained = %q, want instruction 15", all[0].Instruction)
	}
	if all[9].Instruction != "instruction 24" {
		t.Errorf("newest retained = %q, want instruction 24", all[9].Instruction)
	}
}

func TestWindowLast(t *testing.T) {
	w := NewWindow(10)
	for i := 0; i < 8; i++ {
		w.Push(entry(i))
	}

	last := w.Last(5)
	if len(last) != 5 {
		t.Fatalf("Last(5) returned %d entries", len(last))
	}
	// Oldest first within the slice
	if last[0].Instruction != "instruction 3" || last[4].Instruction != "instruction 7" {
		t.Errorf("Last(5) window wrong: first=%q last=%q", last[0].Instruction, last[4].Instruction)
	}

	// Asking for more than present returns what exists
	if got := w.Last(100); len(got) != 8 {
		t.Errorf("Last(100) = %d entries, want 8", len(got))
	}

	if got := w.Last(0); got != nil {
		t.Errorf("Last(0) = %v, want nil", got)
	}
}

func TestWindowDefaultCapacity(t *testing.T) {
	w := NewWindow(0)
	for i := 0; i < 50; i++ {
		w.Push(entry(i))
	}
	if w.Len() != DefaultCapacity {
		t.Errorf("Len = %d, want %d", w.Len(), DefaultCapacity)
	}
}
