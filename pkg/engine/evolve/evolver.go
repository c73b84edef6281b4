package evolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/dellis317/provocations/pkg/llm"
)

// Request carries everything one evolution call needs. Context is the
// pre-assembled block from the contextual builder; the evolver does not
// re-derive it.
type Request struct {
	Document    string
	Selection   string // optional; when set, only this span should change
	Instruction string
	Objective   string
	Context     string
}

// Evolver rewrites a document according to a user instruction. It is a
// thin orchestration over the LLM provider; all prompt-context policy
// lives upstream in the contextual package.
type Evolver struct {
	provider llm.Provider
}

func NewEvolver(provider llm.Provider) *Evolver {
	return &Evolver{provider: provider}
}

const evolveGuidelines = `GUIDELINES:
1. Apply the instruction faithfully; do not make unrelated changes.
2. Preserve the document's markdown structure unless restructuring was asked for.
3. Keep facts, names, and figures intact unless the instruction corrects them.
4. When a selection is given, change only that span and return the FULL document with the span replaced.
5. Return ONLY the evolved document text, with no preamble or commentary.`

// Evolve returns the rewritten document. An empty or whitespace-only
// model response returns the input document unchanged rather than an
// error: a no-op beats destroying the user's draft.
func (e *Evolver) Evolve(ctx context.Context, req Request, opts ...llm.Option) (string, error) {
	messages := []llm.Message{
		{Role: "system", Content: e.systemPrompt(req)},
		{Role: "user", Content: e.userPrompt(req)},
	}

	response, err := e.provider.Chat(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("evolve document: %w", err)
	}

	evolved := strings.TrimSpace(response)
	if evolved == "" {
		return req.Document, nil
	}
	return evolved, nil
}

func (e *Evolver) systemPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString("You are a document editor that evolves a working draft according to the author's instruction.\n\n")
	if req.Objective != "" {
		sb.WriteString("DOCUMENT OBJECTIVE: ")
		sb.WriteString(req.Objective)
		sb.WriteString("\n\n")
	}
	sb.WriteString(evolveGuidelines)
	if req.Context != "" {
		sb.WriteString("\n\n")
		sb.WriteString(req.Context)
	}
	return sb.String()
}

func (e *Evolver) userPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString("DOCUMENT:\n")
	sb.WriteString(req.Document)
	if req.Selection != "" {
		sb.WriteString("\n\nSELECTED PASSAGE (change only this):\n")
		sb.WriteString(req.Selection)
	}
	sb.WriteString("\n\nINSTRUCTION: ")
	sb.WriteString(req.Instruction)
	return sb.String()
}
