package contextual

import (
	"strings"
	"testing"

	"github.com/dellis317/provocations/pkg/engine/classify"
	"github.com/dellis317/provocations/pkg/engine/history"
)

func TestBuildMinimal(t *testing.T) {
	b := &Builder{InstructionType: classify.TypeGeneral}
	out := b.Build()

	if !strings.HasPrefix(out, "STRATEGY:") {
		t.Errorf("context should always start with the strategy block, got %q", out)
	}
	for _, label := range []string{"RECENT EDITS", "STYLE GUIDE", "TEMPLATE", "EXAMPLE", "ACTIVE PERSPECTIVE", "ADDRESSING PROVOCATION", "TARGET LENGTH"} {
		if strings.Contains(out, label) {
			t.Errorf("unset block %q leaked into output", label)
		}
	}
}

func TestBuildBlockOrder(t *testing.T) {
	b := &Builder{
		InstructionType: classify.TypeExpand,
		History: []history.Entry{
			{Instruction: "shorten the intro", InstructionType: "condense"},
		},
		References: []Reference{
			{Name: "brand.md", Type: "style", Content: "Prefer short sentences."},
		},
		ActiveLensType: "executive",
		Provocation: &Provocation{
			Type:    "fallacy",
			Title:   "Correlation treated as causation",
			Content: "Section 2 assumes adoption caused revenue.",
		},
		Tone:         "confident",
		TargetLength: "longer",
	}

	out := b.Build()

	markers := []string{
		"STRATEGY:",
		"RECENT EDITS",
		"STYLE GUIDE (brand.md)",
		"ACTIVE PERSPECTIVE",
		"ADDRESSING PROVOCATION (fallacy)",
		"Write in a confident voice",
		"TARGET LENGTH: grow the document to roughly 130-150%",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		if idx < 0 {
			t.Fatalf("marker %q missing from output:\n%s", m, out)
		}
		if idx < last {
			t.Errorf("marker %q out of order", m)
		}
		last = idx
	}
}

func TestBuildHistoryWindowAndTruncation(t *testing.T) {
	long := strings.Repeat("x", 200)
	var entries []history.Entry
	for i := 0; i < 8; i++ {
		entries = append(entries, history.Entry{
			Instruction:     long,
			InstructionType: "general",
		})
	}
	b := &Builder{InstructionType: classify.TypeGeneral, History: entries}
	out := b.Build()

	lines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "- [") {
			lines++
			// 80 runes plus the ellipsis marker
			body := line[strings.Index(line, "] ")+2:]
			if len([]rune(body)) > 83 {
				t.Errorf("history line too long: %d runes", len([]rune(body)))
			}
		}
	}
	if lines != 5 {
		t.Errorf("got %d history lines, want 5 (last of 8)", lines)
	}
}

func TestBuildReferenceTruncationAndLabels(t *testing.T) {
	big := strings.Repeat("r", 1500)
	b := &Builder{
		InstructionType: classify.TypeGeneral,
		References: []Reference{
			{Name: "t", Type: "template", Content: big},
			{Name: "e", Type: "example", Content: "sample"},
		},
	}
	out := b.Build()

	if !strings.Contains(out, "TEMPLATE (t):") || !strings.Contains(out, "EXAMPLE (e):") {
		t.Fatalf("reference labels missing:\n%s", out)
	}
	if strings.Contains(out, strings.Repeat("r", 1001)) {
		t.Error("reference content not truncated to 1000 chars")
	}
	if !strings.Contains(out, strings.Repeat("r", 1000)+"...") {
		t.Error("truncated reference should end with ellipsis")
	}
}

func TestBuildUnknownLensSkipped(t *testing.T) {
	b := &Builder{InstructionType: classify.TypeGeneral, ActiveLensType: "astrologer"}
	if strings.Contains(b.Build(), "ACTIVE PERSPECTIVE") {
		t.Error("unknown lens type should not produce a perspective block")
	}
}

func TestLensDescriptionsCoverAllTypes(t *testing.T) {
	for _, lt := range []string{"consumer", "executive", "technical", "financial", "strategic", "skeptic"} {
		if LensDescription(lt) == "" {
			t.Errorf("no description for lens type %q", lt)
		}
	}
}
