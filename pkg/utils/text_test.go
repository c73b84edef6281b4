package utils

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hello..."},
		{"", 5, ""},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestSplitText(t *testing.T) {
	text := strings.Repeat("a", 250)
	chunks := SplitText(text, 100, 20)

	if len(chunks) < 3 {
		t.Fatalf("got %d chunks, want at least 3", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk %d has length %d, want <= 100", i, len(c))
		}
	}

	short := SplitText("short", 100, 20)
	if len(short) != 1 || short[0] != "short" {
		t.Errorf("short input should be returned as single chunk, got %v", short)
	}
}
