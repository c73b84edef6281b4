package logger

import (
	"log"
	"os"
	"path/filepath"
)

// NewLLMTrafficLogger returns a plain file logger for raw LLM request and
// response dumps. Kept out of the structured logs: prompts are large and
// only useful when replaying an evolution by hand.
func NewLLMTrafficLogger(path string) *log.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("Warn: cannot create log dir for %s: %v", path, err)
		return log.New(os.Stderr, "[llm] ", log.LstdFlags)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("Warn: cannot open %s: %v", path, err)
		return log.New(os.Stderr, "[llm] ", log.LstdFlags)
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds)
}
