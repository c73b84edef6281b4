package contextual

import (
	"strings"

	"github.com/dellis317/provocations/pkg/engine/classify"
	"github.com/dellis317/provocations/pkg/engine/history"
	"github.com/dellis317/provocations/pkg/utils"
)

const (
	historyWindow   = 5    // entries included in the prompt, of the 10 retained
	historyEntryMax = 80   // chars per history line
	referenceMax    = 1000 // chars per reference document
)

// Reference is a read-only document injected into the prompt context
type Reference struct {
	Name    string
	Type    string // "style", "template", "example"
	Content string
}

// Provocation carries the challenge the user chose to address
type Provocation struct {
	Type          string
	Title         string
	Content       string
	SourceExcerpt string
}

// lensDescriptions maps a lens type to the fixed perspective description
// used in prompts.
var lensDescriptions = map[string]string{
	"consumer":  "an everyday reader who cares about practical benefit and plain language",
	"executive": "a decision-maker who wants the bottom line, risks, and recommendations up front",
	"technical": "an engineer who checks feasibility, precision, and implementation detail",
	"financial": "an analyst focused on costs, revenue implications, and quantified claims",
	"strategic": "a planner weighing long-term positioning and competitive consequences",
	"skeptic":   "a critical reviewer hunting for weak arguments, gaps, and unsupported claims",
}

// LensDescription returns the prompt description for a lens type, or ""
// for unknown types.
func LensDescription(lensType string) string {
	return lensDescriptions[lensType]
}

// Builder assembles the prompt context block for one evolution request.
// Block order is fixed; it matters for prompt quality and, more
// importantly, keeps output deterministic for testing.
type Builder struct {
	InstructionType classify.InstructionType
	History         []history.Entry
	References      []Reference
	ActiveLensType  string
	Provocation     *Provocation
	Tone            string
	TargetLength    string // "shorter", "same", "longer"
}

// Build joins the labeled blocks. Optional blocks are skipped when unset.
func (b *Builder) Build() string {
	var ctx strings.Builder

	b.writeStrategy(&ctx)
	b.writeHistory(&ctx)
	b.writeReferences(&ctx)
	b.writeLens(&ctx)
	b.writeProvocation(&ctx)
	b.writeTone(&ctx)
	b.writeTargetLength(&ctx)

	return strings.TrimRight(ctx.String(), "\n")
}

func (b *Builder) writeStrategy(ctx *strings.Builder) {
	ctx.WriteString(classify.Strategy(b.InstructionType))
	ctx.WriteString("\n\n")
}

func (b *Builder) writeHistory(ctx *strings.Builder) {
	if len(b.History) == 0 {
		return
	}

	entries := b.History
	if len(entries) > historyWindow {
		entries = entries[len(entries)-historyWindow:]
	}

	ctx.WriteString("RECENT EDITS (for consistency with earlier changes):\n")
	for _, e := range entries {
		ctx.WriteString("- [")
		ctx.WriteString(e.InstructionType)
		ctx.WriteString("] ")
		ctx.WriteString(utils.Truncate(e.Instruction, historyEntryMax))
		ctx.WriteString("\n")
	}
	ctx.WriteString("\n")
}

func (b *Builder) writeReferences(ctx *strings.Builder) {
	if len(b.References) == 0 {
		return
	}

	for _, ref := range b.References {
		switch ref.Type {
		case "style":
			ctx.WriteString("STYLE GUIDE")
		case "template":
			ctx.WriteString("TEMPLATE")
		default:
			ctx.WriteString("EXAMPLE")
		}
		if ref.Name != "" {
			ctx.WriteString(" (")
			ctx.WriteString(ref.Name)
			ctx.WriteString(")")
		}
		ctx.WriteString(":\n")
		ctx.WriteString(utils.Truncate(ref.Content, referenceMax))
		ctx.WriteString("\n\n")
	}
}

func (b *Builder) writeLens(ctx *strings.Builder) {
	if b.ActiveLensType == "" {
		return
	}
	desc := LensDescription(b.ActiveLensType)
	if desc == "" {
		return
	}
	ctx.WriteString("ACTIVE PERSPECTIVE: write for ")
	ctx.WriteString(desc)
	ctx.WriteString(".\n\n")
}

func (b *Builder) writeProvocation(ctx *strings.Builder) {
	if b.Provocation == nil {
		return
	}
	p := b.Provocation
	ctx.WriteString("ADDRESSING PROVOCATION (")
	ctx.WriteString(p.Type)
	ctx.WriteString("): ")
	ctx.WriteString(p.Title)
	ctx.WriteString("\n")
	ctx.WriteString(p.Content)
	ctx.WriteString("\n")
	if p.SourceExcerpt != "" {
		ctx.WriteString("Source excerpt: \"")
		ctx.WriteString(p.SourceExcerpt)
		ctx.WriteString("\"\n")
	}
	ctx.WriteString("\n")
}

func (b *Builder) writeTone(ctx *strings.Builder) {
	if b.Tone == "" {
		return
	}
	ctx.WriteString("Write in a ")
	ctx.WriteString(b.Tone)
	ctx.WriteString(" voice.\n\n")
}

func (b *Builder) writeTargetLength(ctx *strings.Builder) {
	switch b.TargetLength {
	case "shorter":
		ctx.WriteString("TARGET LENGTH: reduce the document to roughly 60-70% of its current length.\n\n")
	case "longer":
		ctx.WriteString("TARGET LENGTH: grow the document to roughly 130-150% of its current length.\n\n")
	case "same":
		ctx.WriteString("TARGET LENGTH: keep the document's length unchanged.\n\n")
	}
}
