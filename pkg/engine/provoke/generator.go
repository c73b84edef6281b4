package provoke

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dellis317/provocations/pkg/engine/analyze"
	"github.com/dellis317/provocations/pkg/llm"
	"github.com/dellis317/provocations/pkg/utils"
)

const sourceSampleMax = 4000

// Types lists the provocation categories the generator asks for.
var Types = []string{"opportunity", "fallacy", "alternative"}

// Provocation is one generated challenge to the draft. Status lives on
// the persisted entity, not here; generation always starts at pending.
type Provocation struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	SourceExcerpt string `json:"sourceExcerpt"`
}

// Generator produces challenges meant to push the author to revise
type Generator struct {
	provider llm.Provider
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

const provokeSystemPrompt = `You challenge a document's draft with provocations of three kinds:
- opportunity: something valuable the draft could pursue but doesn't
- fallacy: a weak or flawed argument the draft currently makes
- alternative: a materially different framing or approach worth considering
For each provocation quote the exact passage it reacts to as sourceExcerpt.
Respond with a JSON object: {"provocations": [{"type": "opportunity|fallacy|alternative", "title": "...", "content": "...", "sourceExcerpt": "..."}]}
Produce between 2 and 4 provocations total.`

type provokeEnvelope struct {
	Provocations []Provocation `json:"provocations"`
}

// Generate returns the model's provocations with invalid types dropped.
func (g *Generator) Generate(ctx context.Context, source, objective string) ([]Provocation, error) {
	var sb strings.Builder
	if objective != "" {
		sb.WriteString("OBJECTIVE: ")
		sb.WriteString(objective)
		sb.WriteString("\n\n")
	}
	sb.WriteString("SOURCE MATERIAL:\n")
	sb.WriteString(utils.Truncate(source, sourceSampleMax))

	messages := []llm.Message{
		{Role: "system", Content: provokeSystemPrompt},
		{Role: "user", Content: sb.String()},
	}

	parsed, err := g.requestAndParse(ctx, messages)
	if err != nil {
		messages = append(messages, llm.Message{
			Role:    "user",
			Content: "Your previous reply was not parseable. Respond with ONLY valid JSON, no markdown fences or commentary.",
		})
		parsed, err = g.requestAndParse(ctx, messages)
		if err != nil {
			return nil, fmt.Errorf("generate provocations: %w", err)
		}
	}

	valid := make([]Provocation, 0, len(parsed.Provocations))
	for _, p := range parsed.Provocations {
		if !knownType(p.Type) || strings.TrimSpace(p.Content) == "" {
			continue
		}
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("generate provocations: model returned no usable provocations")
	}
	return valid, nil
}

func knownType(t string) bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

func (g *Generator) requestAndParse(ctx context.Context, messages []llm.Message) (provokeEnvelope, error) {
	response, err := g.provider.Chat(ctx, messages, llm.WithJSONMode(true))
	if err != nil {
		return provokeEnvelope{}, err
	}
	var parsed provokeEnvelope
	if err := json.Unmarshal([]byte(analyze.StripFences(response)), &parsed); err != nil {
		return provokeEnvelope{}, err
	}
	return parsed, nil
}
