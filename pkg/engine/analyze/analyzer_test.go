package analyze

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dellis317/provocations/pkg/llm"
)

// scriptedProvider returns canned responses in sequence, one per call.
type scriptedProvider struct {
	responses []string
	errs      []error
	calls     int
	lastMsgs  []llm.Message
}

func (s *scriptedProvider) Chat(_ context.Context, messages []llm.Message, _ ...llm.Option) (string, error) {
	s.lastMsgs = messages
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var resp string
	if i < len(s.responses) {
		resp = s.responses[i]
	}
	return resp, err
}

func (s *scriptedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

const validJSON = `{"summary": "Tightened the introduction", "changes": [{"type": "modified", "description": "Shorter opening"}], "suggestions": ["Consider a hook"]}`

func TestAnalyzeValidFirstResponse(t *testing.T) {
	p := &scriptedProvider{responses: []string{validJSON}}
	a := NewAnalyzer(p)

	got := a.Analyze(context.Background(), "old", "new", "tighten the intro")

	if got.Summary != "Tightened the introduction" {
		t.Errorf("summary = %q", got.Summary)
	}
	if len(got.Changes) != 1 || got.Changes[0].Type != ChangeModified {
		t.Errorf("changes = %+v", got.Changes)
	}
	if p.calls != 1 {
		t.Errorf("provider called %d times, want 1", p.calls)
	}
}

func TestAnalyzeFencedResponseParses(t *testing.T) {
	p := &scriptedProvider{responses: []string{"```json\n" + validJSON + "\n```"}}
	a := NewAnalyzer(p)

	got := a.Analyze(context.Background(), "old", "new", "tighten")
	if got.Summary != "Tightened the introduction" {
		t.Errorf("fenced JSON not parsed, summary = %q", got.Summary)
	}
	if p.calls != 1 {
		t.Errorf("fenced but valid response should not trigger retry, calls = %d", p.calls)
	}
}

func TestAnalyzeRetriesExactlyOnceThenFallsBack(t *testing.T) {
	p := &scriptedProvider{responses: []string{"not json", "still not json"}}
	a := NewAnalyzer(p)

	instruction := "restructure everything"
	got := a.Analyze(context.Background(), "old", "new", instruction)

	if p.calls != 2 {
		t.Fatalf("provider called %d times, want exactly 2", p.calls)
	}
	retry := p.lastMsgs[len(p.lastMsgs)-1]
	if !strings.Contains(retry.Content, "ONLY valid JSON") {
		t.Errorf("retry message missing format reminder: %q", retry.Content)
	}
	if got.Summary != "Applied: "+instruction {
		t.Errorf("fallback summary = %q", got.Summary)
	}
	if got.Changes == nil || len(got.Changes) != 0 {
		t.Errorf("fallback changes should be empty non-nil, got %+v", got.Changes)
	}
	if got.Suggestions == nil || len(got.Suggestions) != 0 {
		t.Errorf("fallback suggestions should be empty non-nil, got %#v", got.Suggestions)
	}
}

func TestAnalyzeRetrySucceeds(t *testing.T) {
	p := &scriptedProvider{responses: []string{"garbage", validJSON}}
	a := NewAnalyzer(p)

	got := a.Analyze(context.Background(), "old", "new", "tighten")
	if got.Summary != "Tightened the introduction" {
		t.Errorf("retry result not used, summary = %q", got.Summary)
	}
	if p.calls != 2 {
		t.Errorf("calls = %d, want 2", p.calls)
	}
}

func TestAnalyzeProviderErrorNeverSurfaces(t *testing.T) {
	p := &scriptedProvider{errs: []error{errors.New("timeout"), errors.New("timeout")}}
	a := NewAnalyzer(p)

	got := a.Analyze(context.Background(), "old", "new", "fix typos")
	if !strings.HasPrefix(got.Summary, "Applied: ") {
		t.Errorf("provider failure should yield fallback, got %q", got.Summary)
	}
}

func TestAnalyzeFallbackTruncatesLongInstruction(t *testing.T) {
	p := &scriptedProvider{responses: []string{"x", "y"}}
	a := NewAnalyzer(p)

	long := strings.Repeat("z", 300)
	got := a.Analyze(context.Background(), "old", "new", long)

	want := "Applied: " + strings.Repeat("z", 100) + "..."
	if got.Summary != want {
		t.Errorf("summary = %q, want %q", got.Summary, want)
	}
}

func TestAnalyzeClampsAndCoerces(t *testing.T) {
	resp := `{"summary": "s", "changes": [
		{"type": "added", "description": "a"},
		{"type": "rewrote", "description": "b"},
		{"type": "removed", "description": "c"},
		{"type": "modified", "description": "d"}
	], "suggestions": ["1", "2", "3"]}`
	p := &scriptedProvider{responses: []string{resp}}
	a := NewAnalyzer(p)

	got := a.Analyze(context.Background(), "old", "new", "i")

	if len(got.Changes) != 3 {
		t.Fatalf("changes clamped to %d, want 3", len(got.Changes))
	}
	if got.Changes[1].Type != ChangeModified {
		t.Errorf("unknown type not coerced, got %q", got.Changes[1].Type)
	}
	if len(got.Suggestions) != 2 {
		t.Errorf("suggestions clamped to %d, want 2", len(got.Suggestions))
	}
}

func TestAnalyzeRestructuredTypeKept(t *testing.T) {
	resp := `{"summary": "s", "changes": [{"type": "restructured", "description": "sections reordered", "location": "body"}]}`
	p := &scriptedProvider{responses: []string{resp}}
	a := NewAnalyzer(p)

	got := a.Analyze(context.Background(), "old", "new", "reorganize")

	if len(got.Changes) != 1 {
		t.Fatalf("changes = %+v", got.Changes)
	}
	if got.Changes[0].Type != ChangeRestructured {
		t.Errorf("restructured coerced to %q", got.Changes[0].Type)
	}
	if got.Changes[0].Location != "body" {
		t.Errorf("location dropped, got %q", got.Changes[0].Location)
	}
}

func TestAnalyzeEmptySummaryTreatedAsParseFailure(t *testing.T) {
	p := &scriptedProvider{responses: []string{`{"summary": "  "}`, validJSON}}
	a := NewAnalyzer(p)

	got := a.Analyze(context.Background(), "old", "new", "i")
	if got.Summary != "Tightened the introduction" {
		t.Errorf("blank summary should trigger retry, got %q", got.Summary)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  ```JSON\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := StripFences(tt.in); got != tt.want {
			t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnalyzeTruncatesDocumentsInPrompt(t *testing.T) {
	p := &scriptedProvider{responses: []string{validJSON}}
	a := NewAnalyzer(p)

	huge := strings.Repeat("w", 5000)
	a.Analyze(context.Background(), huge, huge, "i")

	user := p.lastMsgs[1].Content
	if strings.Contains(user, strings.Repeat("w", 2001)) {
		t.Error("document sample exceeds 2000 chars")
	}
}
