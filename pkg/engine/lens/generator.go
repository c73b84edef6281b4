package lens

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dellis317/provocations/pkg/engine/analyze"
	"github.com/dellis317/provocations/pkg/engine/contextual"
	"github.com/dellis317/provocations/pkg/llm"
	"github.com/dellis317/provocations/pkg/utils"
)

const sourceSampleMax = 4000

// Types lists the fixed analytical perspectives, in presentation order.
var Types = []string{"consumer", "executive", "technical", "financial", "strategic", "skeptic"}

// Lens is one perspective reading of the source material
type Lens struct {
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

// Generator produces the six perspective summaries in a single call
type Generator struct {
	provider llm.Provider
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

const lensSystemPrompt = `You analyze source material through six fixed perspectives.
For each perspective, produce a short title, a 2-3 sentence summary, and 2-4 key points.
Respond with a JSON object: {"lenses": [{"type": "...", "title": "...", "summary": "...", "keyPoints": ["..."]}]}
Use exactly these perspective types, one lens each: consumer, executive, technical, financial, strategic, skeptic.`

type lensEnvelope struct {
	Lenses []Lens `json:"lenses"`
}

// Generate returns one lens per perspective type. Lenses the model skips
// or mislabels are dropped; order follows Types, not model output.
func (g *Generator) Generate(ctx context.Context, source, objective string) ([]Lens, error) {
	var sb strings.Builder
	if objective != "" {
		sb.WriteString("OBJECTIVE: ")
		sb.WriteString(objective)
		sb.WriteString("\n\n")
	}
	for _, lt := range Types {
		sb.WriteString("- ")
		sb.WriteString(lt)
		sb.WriteString(": ")
		sb.WriteString(contextual.LensDescription(lt))
		sb.WriteString("\n")
	}
	sb.WriteString("\nSOURCE MATERIAL:\n")
	sb.WriteString(utils.Truncate(source, sourceSampleMax))

	messages := []llm.Message{
		{Role: "system", Content: lensSystemPrompt},
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
			return nil, fmt.Errorf("generate lenses: %w", err)
		}
	}

	byType := make(map[string]Lens, len(parsed.Lenses))
	for _, l := range parsed.Lenses {
		if contextual.LensDescription(l.Type) == "" || strings.TrimSpace(l.Summary) == "" {
			continue
		}
		if _, dup := byType[l.Type]; dup {
			continue
		}
		byType[l.Type] = l
	}

	ordered := make([]Lens, 0, len(byType))
	for _, lt := range Types {
		if l, ok := byType[lt]; ok {
			ordered = append(ordered, l)
		}
	}
	if len(ordered) == 0 {
		return nil, fmt.Errorf("generate lenses: model returned no usable perspectives")
	}
	return ordered, nil
}

func (g *Generator) requestAndParse(ctx context.Context, messages []llm.Message) (lensEnvelope, error) {
	response, err := g.provider.Chat(ctx, messages, llm.WithJSONMode(true))
	if err != nil {
		return lensEnvelope{}, err
	}
	var parsed lensEnvelope
	if err := json.Unmarshal([]byte(analyze.StripFences(response)), &parsed); err != nil {
		return lensEnvelope{}, err
	}
	return parsed, nil
}
