package evolve

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dellis317/provocations/pkg/llm"
)

type fakeProvider struct {
	response string
	err      error
	gotMsgs  []llm.Message
}

func (f *fakeProvider) Chat(_ context.Context, messages []llm.Message, _ ...llm.Option) (string, error) {
	f.gotMsgs = messages
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func TestEvolveReturnsModelOutput(t *testing.T) {
	fake := &fakeProvider{response: "  New draft.  "}
	e := NewEvolver(fake)

	got, err := e.Evolve(context.Background(), Request{
		Document:    "Old draft.",
		Instruction: "make it punchier",
		Objective:   "pitch the product",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "New draft." {
		t.Errorf("got %q, want trimmed model output", got)
	}

	if len(fake.gotMsgs) != 2 {
		t.Fatalf("got %d messages, want system+user", len(fake.gotMsgs))
	}
	sys, user := fake.gotMsgs[0], fake.gotMsgs[1]
	if sys.Role != "system" || !strings.Contains(sys.Content, "DOCUMENT OBJECTIVE: pitch the product") {
		t.Errorf("system prompt missing objective: %q", sys.Content)
	}
	if !strings.Contains(sys.Content, "GUIDELINES:") {
		t.Error("system prompt missing guidelines")
	}
	if user.Role != "user" || !strings.Contains(user.Content, "INSTRUCTION: make it punchier") {
		t.Errorf("user prompt malformed: %q", user.Content)
	}
}

func TestEvolveEmptyResponseReturnsInputUnchanged(t *testing.T) {
	for _, resp := range []string{"", "   ", "\n\t"} {
		fake := &fakeProvider{response: resp}
		e := NewEvolver(fake)

		got, err := e.Evolve(context.Background(), Request{
			Document:    "Keep me.",
			Instruction: "expand",
		})
		if err != nil {
			t.Fatalf("response %q: unexpected error: %v", resp, err)
		}
		if got != "Keep me." {
			t.Errorf("response %q: got %q, want original document", resp, got)
		}
	}
}

func TestEvolvePropagatesProviderError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("connection refused")}
	e := NewEvolver(fake)

	if _, err := e.Evolve(context.Background(), Request{Document: "d", Instruction: "i"}); err == nil {
		t.Fatal("want error from provider, got nil")
	}
}

func TestEvolveSelectionIncludedInPrompt(t *testing.T) {
	fake := &fakeProvider{response: "out"}
	e := NewEvolver(fake)

	_, err := e.Evolve(context.Background(), Request{
		Document:    "Intro.\nBody.",
		Selection:   "Body.",
		Instruction: "clarify",
	})
	if err != nil {
		t.Fatal(err)
	}
	user := fake.gotMsgs[1].Content
	if !strings.Contains(user, "SELECTED PASSAGE (change only this):\nBody.") {
		t.Errorf("selection block missing: %q", user)
	}
}

func TestEvolveContextBlockAppendedToSystemPrompt(t *testing.T) {
	fake := &fakeProvider{response: "out"}
	e := NewEvolver(fake)

	_, err := e.Evolve(context.Background(), Request{
		Document:    "d",
		Instruction: "i",
		Context:     "STRATEGY: Condense the relevant material.",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(fake.gotMsgs[0].Content, "STRATEGY: Condense") {
		t.Error("assembled context not appended to system prompt")
	}
}
