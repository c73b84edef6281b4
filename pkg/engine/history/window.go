package history

import (
	"time"
)

// Entry is one remembered edit. The window exists to bias future
// generation calls toward consistency; it is not an audit log.
type Entry struct {
	Instruction     string
	InstructionType string
	Summary         string
	Timestamp       time.Time
}

// DefaultCapacity is the trailing number of edits retained per document.
const DefaultCapacity = 10

// Window is a bounded trailing window of edit entries. Pushing beyond
// capacity silently discards the oldest entry.
type Window struct {
	entries  []Entry
	capacity int
}

func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Window{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

func (w *Window) Push(e Entry) {
	w.entries = append(w.entries, e)
	if len(w.entries) > w.capacity {
		w.entries = w.entries[len(w.entries)-w.capacity:]
	}
}

func (w *Window) Len() int {
	return len(w.entries)
}

// Last returns up to n most recent entries, oldest first.
func (w *Window) Last(n int) []Entry {
	if n <= 0 || len(w.entries) == 0 {
		return nil
	}
	if n > len(w.entries) {
		n = len(w.entries)
	}
	out := make([]Entry, n)
	copy(out, w.entries[len(w.entries)-n:])
	return out
}

// All returns the retained entries, oldest first.
func (w *Window) All() []Entry {
	return w.Last(len(w.entries))
}
