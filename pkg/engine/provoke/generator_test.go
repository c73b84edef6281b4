package provoke

import (
	"context"
	"testing"

	"github.com/dellis317/provocations/pkg/llm"
)

type scriptedProvider struct {
	responses []string
	calls     int
}

func (s *scriptedProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	i := s.calls
	s.calls++
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", nil
}

func (s *scriptedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, nil, opts...)
}

const validProvocations = `{"provocations": [
	{"type": "fallacy", "title": "Causation leap", "content": "Adoption did not necessarily drive revenue.", "sourceExcerpt": "our growth proves"},
	{"type": "opportunity", "title": "Untapped segment", "content": "SMB readers are never addressed.", "sourceExcerpt": "enterprise buyers"}
]}`

func TestGenerateReturnsValidProvocations(t *testing.T) {
	p := &scriptedProvider{responses: []string{validProvocations}}
	g := NewGenerator(p)

	got, err := g.Generate(context.Background(), "source", "convince investors")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d provocations, want 2", len(got))
	}
	if got[0].Type != "fallacy" || got[0].SourceExcerpt != "our growth proves" {
		t.Errorf("first provocation = %+v", got[0])
	}
}

func TestGenerateDropsInvalidTypesAndEmptyContent(t *testing.T) {
	resp := `{"provocations": [
		{"type": "insult", "title": "t", "content": "c", "sourceExcerpt": ""},
		{"type": "alternative", "title": "t", "content": "  ", "sourceExcerpt": ""},
		{"type": "alternative", "title": "keep", "content": "Try a narrative structure.", "sourceExcerpt": ""}
	]}`
	p := &scriptedProvider{responses: []string{resp}}
	g := NewGenerator(p)

	got, err := g.Generate(context.Background(), "src", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "keep" {
		t.Errorf("got %+v, want only the valid alternative", got)
	}
}

func TestGenerateRetryThenError(t *testing.T) {
	p := &scriptedProvider{responses: []string{"nope", "still nope"}}
	g := NewGenerator(p)

	if _, err := g.Generate(context.Background(), "src", ""); err == nil {
		t.Fatal("want error after two unparseable responses")
	}
	if p.calls != 2 {
		t.Errorf("calls = %d, want exactly 2", p.calls)
	}
}

func TestGenerateFencedRetrySucceeds(t *testing.T) {
	p := &scriptedProvider{responses: []string{"garbage", "```json\n" + validProvocations + "\n```"}}
	g := NewGenerator(p)

	got, err := g.Generate(context.Background(), "src", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("got %d provocations after fenced retry, want 2", len(got))
	}
}
