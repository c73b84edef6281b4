package diffview

import (
	"testing"
)

func TestDiffIdenticalInput(t *testing.T) {
	text := "Line A\nLine B\nLine C"
	lines := Diff(text, text)

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, line := range lines {
		if line.Type != LineUnchanged {
			t.Errorf("line %q marked %s, want unchanged", line.Content, line.Type)
		}
	}
	if Count(lines, LineAdded) != 0 || Count(lines, LineRemoved) != 0 {
		t.Error("identical input should yield zero added/removed")
	}
}

func TestDiffDisjointInputs(t *testing.T) {
	oldText := "alpha\nbeta"
	newText := "gamma\ndelta\nepsilon"

	lines := Diff(oldText, newText)

	removed := Count(lines, LineRemoved)
	added := Count(lines, LineAdded)
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if added != 3 {
		t.Errorf("added = %d, want 3", added)
	}
	if Count(lines, LineUnchanged) != 0 {
		t.Error("disjoint inputs should have no unchanged lines")
	}
	if added+removed > 5 {
		t.Errorf("added+removed = %d exceeds total input lines", added+removed)
	}
}

func TestDiffSingleLineChange(t *testing.T) {
	oldText := "Line A\nLine B\nLine C"
	newText := "Line A\nLine B2\nLine C"

	lines := Diff(oldText, newText)

	want := []DiffLine{
		{Type: LineUnchanged, Content: "Line A"},
		{Type: LineRemoved, Content: "Line B"},
		{Type: LineAdded, Content: "Line B2"},
		{Type: LineUnchanged, Content: "Line C"},
	}

	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], w)
		}
	}
}

func TestDiffPureAddition(t *testing.T) {
	oldText := "Line A"
	newText := "Line A\nLine B\nLine C"

	lines := Diff(oldText, newText)

	if lines[0].Type != LineUnchanged {
		t.Errorf("first line = %s, want unchanged", lines[0].Type)
	}
	if Count(lines, LineAdded) != 2 || Count(lines, LineRemoved) != 0 {
		t.Errorf("added=%d removed=%d, want 2/0", Count(lines, LineAdded), Count(lines, LineRemoved))
	}
}

func TestDiffPureRemoval(t *testing.T) {
	oldText := "Line A\nLine B\nLine C"
	newText := "Line C"

	lines := Diff(oldText, newText)

	// "Line A" and "Line B" don't exist in new: removed via the
	// absent-in-new branch, then "Line C" aligns.
	want := []DiffLine{
		{Type: LineRemoved, Content: "Line A"},
		{Type: LineRemoved, Content: "Line B"},
		{Type: LineUnchanged, Content: "Line C"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], w)
		}
	}
}

func TestDiffMisalignedSharedLinesEmitPair(t *testing.T) {
	// Both "one" and "two" exist on both sides but never align; the walk
	// emits removed/added pairs rather than seeking a minimal alignment.
	// This tie-break is part of the contract: output must be reproducible.
	oldText := "one\ntwo"
	newText := "two\none"

	lines := Diff(oldText, newText)

	want := []DiffLine{
		{Type: LineRemoved, Content: "one"},
		{Type: LineAdded, Content: "two"},
		{Type: LineRemoved, Content: "two"},
		{Type: LineAdded, Content: "one"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], w)
		}
	}
}

func TestDiffDeterministic(t *testing.T) {
	oldText := "a\nb\nc\nd"
	newText := "a\nc\nb\ne"

	first := Diff(oldText, newText)
	for run := 0; run < 5; run++ {
		again := Diff(oldText, newText)
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d != %d", run, len(again), len(first))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: line %d differs: %+v vs %+v", run, i, again[i], first[i])
			}
		}
	}
}
