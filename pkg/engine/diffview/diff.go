package diffview

import (
	"strings"
)

// LineType classifies a rendered diff line
type LineType string

const (
	LineUnchanged LineType = "unchanged"
	LineAdded     LineType = "added"
	LineRemoved   LineType = "removed"
)

// DiffLine is one line of the rendered diff view
type DiffLine struct {
	Type    LineType `json:"type"`
	Content string   `json:"content"`
}

// Diff computes a line-level added/removed/unchanged classification
// between two texts using a two-pointer walk with per-side membership
// sets. It is NOT an LCS/Myers diff: lines present on both sides but out
// of alignment are emitted as a removed/added pair, and reordered
// identical lines can misalign. That readability/performance trade-off
// is intentional; keep the branch order below so output stays
// reproducible.
func Diff(oldText, newText string) []DiffLine {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	inOld := make(map[string]struct{}, len(oldLines))
	for _, line := range oldLines {
		inOld[line] = struct{}{}
	}
	inNew := make(map[string]struct{}, len(newLines))
	for _, line := range newLines {
		inNew[line] = struct{}{}
	}

	result := make([]DiffLine, 0, len(oldLines)+len(newLines))
	i, j := 0, 0

	for i < len(oldLines) || j < len(newLines) {
		switch {
		case i >= len(oldLines):
			result = append(result, DiffLine{Type: LineAdded, Content: newLines[j]})
			j++
		case j >= len(newLines):
			result = append(result, DiffLine{Type: LineRemoved, Content: oldLines[i]})
			i++
		case oldLines[i] == newLines[j]:
			result = append(result, DiffLine{Type: LineUnchanged, Content: oldLines[i]})
			i++
			j++
		default:
			_, oldInNew := inNew[oldLines[i]]
			_, newInOld := inOld[newLines[j]]
			switch {
			case !oldInNew:
				result = append(result, DiffLine{Type: LineRemoved, Content: oldLines[i]})
				i++
			case !newInOld:
				result = append(result, DiffLine{Type: LineAdded, Content: newLines[j]})
				j++
			default:
				// Both lines exist somewhere on the other side, just not
				// aligned here: emit a removed/added pair and move on.
				result = append(result, DiffLine{Type: LineRemoved, Content: oldLines[i]})
				result = append(result, DiffLine{Type: LineAdded, Content: newLines[j]})
				i++
				j++
			}
		}
	}

	return result
}

// Count returns the number of diff lines of the given type. Counts are
// derived from the rendered output, never tracked separately.
func Count(lines []DiffLine, t LineType) int {
	n := 0
	for _, line := range lines {
		if line.Type == t {
			n++
		}
	}
	return n
}
