package analyze

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dellis317/provocations/pkg/llm"
	"github.com/dellis317/provocations/pkg/utils"
)

const (
	documentSampleMax = 2000 // chars of each document sent to the model
	maxChanges        = 3
	maxSuggestions    = 2
	fallbackInstrMax  = 100
)

// ChangeType classifies one reported change
type ChangeType string

const (
	ChangeAdded        ChangeType = "added"
	ChangeRemoved      ChangeType = "removed"
	ChangeModified     ChangeType = "modified"
	ChangeRestructured ChangeType = "restructured"
)

// Change is one model-reported difference between document versions.
// Location is optional free text ("introduction", "paragraph 3").
type Change struct {
	Type        ChangeType `json:"type"`
	Description string     `json:"description"`
	Location    string     `json:"location,omitempty"`
}

// Analysis summarizes what one evolution did to the document
type Analysis struct {
	Summary     string   `json:"summary"`
	Changes     []Change `json:"changes"`
	Suggestions []string `json:"suggestions"`
}

// Analyzer asks the model to describe what changed between two document
// versions. Analysis is advisory metadata: it NEVER returns an error.
// When the model cannot produce usable JSON after one retry, a
// deterministic fallback is built from the instruction instead.
type Analyzer struct {
	provider llm.Provider
}

func NewAnalyzer(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

const analyzeSystemPrompt = `You compare two versions of a document and report what changed.
Respond with a JSON object of this exact shape:
{"summary": "one sentence describing the overall change", "changes": [{"type": "added|removed|modified|restructured", "description": "...", "location": "optional, e.g. a section name"}], "suggestions": ["..."]}
List at most 3 changes and at most 2 suggestions.`

// Analyze describes the old->new transition. Both documents are sampled
// to their first 2000 characters; the analysis cares about the nature of
// the change, not every line of it.
func (a *Analyzer) Analyze(ctx context.Context, oldDoc, newDoc, instruction string) Analysis {
	userPrompt := a.userPrompt(oldDoc, newDoc, instruction)

	messages := []llm.Message{
		{Role: "system", Content: analyzeSystemPrompt},
		{Role: "user", Content: userPrompt},
	}

	if result, ok := a.requestAndParse(ctx, messages); ok {
		return result
	}

	// One retry with an explicit format reminder, then give up on the model.
	messages = append(messages, llm.Message{
		Role:    "user",
		Content: "Your previous reply was not parseable. Respond with ONLY valid JSON, no markdown fences or commentary.",
	})
	if result, ok := a.requestAndParse(ctx, messages); ok {
		return result
	}

	return fallbackAnalysis(instruction)
}

func (a *Analyzer) requestAndParse(ctx context.Context, messages []llm.Message) (Analysis, bool) {
	response, err := a.provider.Chat(ctx, messages, llm.WithJSONMode(true))
	if err != nil {
		return Analysis{}, false
	}

	var parsed Analysis
	if err := json.Unmarshal([]byte(StripFences(response)), &parsed); err != nil {
		return Analysis{}, false
	}
	if strings.TrimSpace(parsed.Summary) == "" {
		return Analysis{}, false
	}
	return sanitize(parsed), true
}

func (a *Analyzer) userPrompt(oldDoc, newDoc, instruction string) string {
	var sb strings.Builder
	sb.WriteString("INSTRUCTION THAT CAUSED THE CHANGE: ")
	sb.WriteString(instruction)
	sb.WriteString("\n\nPREVIOUS VERSION:\n")
	sb.WriteString(utils.Truncate(oldDoc, documentSampleMax))
	sb.WriteString("\n\nNEW VERSION:\n")
	sb.WriteString(utils.Truncate(newDoc, documentSampleMax))
	return sb.String()
}

// sanitize clamps list sizes and coerces unknown change types. The model
// occasionally invents types like "edited" or "rewrote"; downstream
// consumers only understand the canonical ones.
func sanitize(a Analysis) Analysis {
	if len(a.Changes) > maxChanges {
		a.Changes = a.Changes[:maxChanges]
	}
	for i, c := range a.Changes {
		switch c.Type {
		case ChangeAdded, ChangeRemoved, ChangeModified, ChangeRestructured:
		default:
			a.Changes[i].Type = ChangeModified
		}
	}
	if len(a.Suggestions) > maxSuggestions {
		a.Suggestions = a.Suggestions[:maxSuggestions]
	}
	return a
}

func fallbackAnalysis(instruction string) Analysis {
	return Analysis{
		Summary:     "Applied: " + utils.Truncate(instruction, fallbackInstrMax),
		Changes:     []Change{},
		Suggestions: []string{},
	}
}

// StripFences removes a surrounding markdown code fence from a model
// response, tolerating a language tag on the opening fence.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line ("json", "JSON", or empty)
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
