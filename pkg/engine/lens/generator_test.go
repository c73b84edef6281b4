package lens

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

const twoLenses = `{"lenses": [
	{"type": "skeptic", "title": "Weak evidence", "summary": "Claims lack support.", "keyPoints": ["no data"]},
	{"type": "consumer", "title": "What do I get", "summary": "Benefit is unclear.", "keyPoints": ["jargon"]}
]}`

func TestGenerateOrdersByFixedTypeOrder(t *testing.T) {
	p := &scriptedProvider{responses: []string{twoLenses}}
	g := NewGenerator(p)

	got, err := g.Generate(context.Background(), "source text", "sell it")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d lenses, want 2", len(got))
	}
	// consumer precedes skeptic in the canonical order regardless of
	// model output order
	if got[0].Type != "consumer" || got[1].Type != "skeptic" {
		t.Errorf("order = [%s, %s], want [consumer, skeptic]", got[0].Type, got[1].Type)
	}
}

func TestGenerateDropsUnknownTypesAndDuplicates(t *testing.T) {
	resp := `{"lenses": [
		{"type": "astrologer", "title": "t", "summary": "s", "keyPoints": []},
		{"type": "executive", "title": "first", "summary": "s1", "keyPoints": []},
		{"type": "executive", "title": "second", "summary": "s2", "keyPoints": []}
	]}`
	p := &scriptedProvider{responses: []string{resp}}
	g := NewGenerator(p)

	got, err := g.Generate(context.Background(), "src", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "first" {
		t.Errorf("got %+v, want single executive lens keeping first occurrence", got)
	}
}

func TestGenerateRetriesOnceOnBadJSON(t *testing.T) {
	p := &scriptedProvider{responses: []string{"not json", "```json\n" + twoLenses + "\n```"}}
	g := NewGenerator(p)

	got, err := g.Generate(context.Background(), "src", "")
	if err != nil {
		t.Fatal(err)
	}
	if p.calls != 2 {
		t.Errorf("calls = %d, want 2", p.calls)
	}
	if len(got) != 2 {
		t.Errorf("got %d lenses after retry, want 2", len(got))
	}
}

func TestGenerateErrorsAfterSecondFailure(t *testing.T) {
	p := &scriptedProvider{responses: []string{"bad", "worse"}}
	g := NewGenerator(p)

	if _, err := g.Generate(context.Background(), "src", ""); err == nil {
		t.Fatal("want error after two unparseable responses")
	}
	if p.calls != 2 {
		t.Errorf("calls = %d, want exactly 2", p.calls)
	}
}

func TestGenerateErrorsWhenAllLensesUnusable(t *testing.T) {
	p := &scriptedProvider{responses: []string{`{"lenses": [{"type": "consumer", "summary": "  "}]}`}}
	g := NewGenerator(p)

	if _, err := g.Generate(context.Background(), "src", ""); err == nil {
		t.Fatal("blank summaries should not count as usable lenses")
	}
}
