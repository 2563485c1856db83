package chat

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	chunks := []string{
		"The warranty period is 24 months.",
		"Claims must be filed within 30 days.",
	}

	prompt, err := buildPrompt(chunks, "How long is the warranty?")
	if err != nil {
		t.Fatalf("buildPrompt() = %v", err)
	}

	for _, chunk := range chunks {
		if !strings.Contains(prompt, chunk) {
			t.Errorf("prompt does not contain chunk %q", chunk)
		}
	}
	if !strings.Contains(prompt, "How long is the warranty?") {
		t.Error("prompt does not contain the question")
	}
}

func TestBuildPromptNoChunks(t *testing.T) {
	prompt, err := buildPrompt(nil, "Anything?")
	if err != nil {
		t.Fatalf("buildPrompt() = %v", err)
	}
	if !strings.Contains(prompt, "Anything?") {
		t.Error("prompt does not contain the question")
	}
}
