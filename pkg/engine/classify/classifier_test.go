package classify

import (
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name        string
		instruction string
		want        InstructionType
	}{
		{
			name:        "expand keyword",
			instruction: "please expand this section",
			want:        TypeExpand,
		},
		{
			name:        "correct via typo",
			instruction: "fix the typo in paragraph 2",
			want:        TypeCorrect,
		},
		{
			name:        "restructure via reorganize",
			instruction: "reorganize the intro",
			want:        TypeRestructure,
		},
		{
			name:        "condense via shorten",
			instruction: "shorten the conclusion",
			want:        TypeCondense,
		},
		{
			name:        "clarify",
			instruction: "make this clearer for a general audience",
			want:        TypeClarify,
		},
		{
			name:        "style via tone",
			instruction: "change the tone to be warmer",
			want:        TypeStyle,
		},
		{
			name:        "no keyword falls back to general",
			instruction: "make it pop",
			want:        TypeGeneral,
		},
		{
			name:        "case insensitive",
			instruction: "EXPAND the second half",
			want:        TypeExpand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.instruction)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.instruction, got, tt.want)
			}
		})
	}
}

func TestClassifyDeclarationOrderWins(t *testing.T) {
	c := NewClassifier()

	// "shorten" matches condense, "tone" matches style. Condense is declared
	// earlier, so it wins no matter how many style patterns would also hit.
	got := c.Classify("shorten this and fix the tone")
	if got != TypeCondense {
		t.Errorf("Classify = %v, want %v (earlier category must win)", got, TypeCondense)
	}

	// Same input, repeated calls: pure function
	for i := 0; i < 3; i++ {
		if again := c.Classify("shorten this and fix the tone"); again != got {
			t.Errorf("Classify not deterministic: got %v then %v", got, again)
		}
	}
}

func TestStrategyNonEmpty(t *testing.T) {
	types := []InstructionType{
		TypeExpand, TypeCondense, TypeRestructure,
		TypeClarify, TypeStyle, TypeCorrect, TypeGeneral,
	}
	for _, typ := range types {
		if Strategy(typ) == "" {
			t.Errorf("Strategy(%v) is empty", typ)
		}
	}
}
