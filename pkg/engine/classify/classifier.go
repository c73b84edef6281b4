package classify

import (
	"regexp"
)

// InstructionType categorizes a free-text editing instruction
type InstructionType string

const (
	TypeExpand      InstructionType = "expand"
	TypeCondense    InstructionType = "condense"
	TypeRestructure InstructionType = "restructure"
	TypeClarify     InstructionType = "clarify"
	TypeStyle       InstructionType = "style"
	TypeCorrect     InstructionType = "correct"
	TypeGeneral     InstructionType = "general"
)

// Rule pairs a category with the patterns that select it.
// Rules are evaluated in declaration order: the FIRST category with any
// matching pattern wins, regardless of how many patterns a later category
// would also match. This is a deliberate keyword heuristic, not NLP; a
// misclassification only changes which strategy text is appended to the
// prompt.
type Rule struct {
	Type     InstructionType
	Patterns []*regexp.Regexp
}

// Classifier maps instructions to instruction types via ordered rules.
// Keeping the rules as data makes the strategy swappable (e.g. for an
// embedding-based classifier) without touching callers.
type Classifier struct {
	rules []Rule
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

// NewClassifier creates a classifier with the default rule table
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []Rule{
			{
				Type: TypeExpand,
				Patterns: compileAll(
					`expand`, `elaborate`, `add more`, `more detail`,
					`lengthen`, `flesh out`, `go deeper`,
				),
			},
			{
				Type: TypeCondense,
				Patterns: compileAll(
					`condense`, `shorten`, `trim`, `tighten`,
					`cut down`, `more concise`, `summariz`,
				),
			},
			{
				Type: TypeRestructure,
				Patterns: compileAll(
					`restructure`, `reorganiz`, `reorder`, `rearrange`,
					`\bmove\b`, `swap`, `new structure`,
				),
			},
			{
				Type: TypeClarify,
				Patterns: compileAll(
					`clarify`, `clearer`, `simplify`, `plain language`,
					`easier to understand`, `less confusing`,
				),
			},
			{
				Type: TypeStyle,
				Patterns: compileAll(
					`\btone\b`, `\bvoice\b`, `\bstyle\b`, `formal`,
					`casual`, `friendlier`, `professional`,
				),
			},
			{
				Type: TypeCorrect,
				Patterns: compileAll(
					`\bfix\b`, `typo`, `correct`, `grammar`,
					`spelling`, `mistake`,
				),
			},
		},
	}
}

// Classify returns the first rule whose patterns match, or TypeGeneral.
// Pure function over the rule table: repeated calls with the same input
// return the same category.
func (c *Classifier) Classify(instruction string) InstructionType {
	for _, rule := range c.rules {
		for _, pattern := range rule.Patterns {
			if pattern.MatchString(instruction) {
				return rule.Type
			}
		}
	}
	return TypeGeneral
}

// Strategy returns the prompt strategy text for an instruction type.
// Always included in the assembled context block.
func Strategy(t InstructionType) string {
	switch t {
	case TypeExpand:
		return "STRATEGY: Expand the relevant material with additional depth, examples, and supporting detail while keeping the existing structure intact."
	case TypeCondense:
		return "STRATEGY: Condense the relevant material, removing redundancy and keeping only what carries the argument."
	case TypeRestructure:
		return "STRATEGY: Reorganize the document's structure for better flow; preserve the content itself."
	case TypeClarify:
		return "STRATEGY: Rewrite unclear passages in plainer language without losing precision."
	case TypeStyle:
		return "STRATEGY: Adjust tone and voice as requested while preserving meaning and structure."
	case TypeCorrect:
		return "STRATEGY: Fix errors (grammar, spelling, factual slips) with minimal other changes."
	default:
		return "STRATEGY: Apply the instruction as written, making focused changes that serve the document's objective."
	}
}
