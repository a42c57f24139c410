package prompts

import (
	"strings"
	"testing"
)

func TestBuildPromptInterpolatesQuestion(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager failed: %v", err)
	}

	question := "Given an array of integers, return the two indices that sum to target."

	for _, style := range []string{"json", "sections"} {
		prompt, err := pm.BuildPrompt("analyze", style, question)
		if err != nil {
			t.Fatalf("BuildPrompt(%s) failed: %v", style, err)
		}
		if !strings.Contains(prompt, question) {
			t.Fatalf("style %s: question not interpolated:\n%s", style, prompt)
		}
		if strings.Contains(prompt, "{{.Question}}") {
			t.Fatalf("style %s: placeholder left in prompt", style)
		}
	}
}

func TestBuildPromptStyleShapes(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager failed: %v", err)
	}

	sections, err := pm.BuildPrompt("analyze", "sections", "q")
	if err != nil {
		t.Fatalf("sections style: %v", err)
	}
	for _, header := range []string{"DIFFICULTY:", "TOPICS:", "EXAMPLES:", "SOLUTIONS:", "HINT:"} {
		if !strings.Contains(sections, header) {
			t.Fatalf("sections prompt missing %q", header)
		}
	}

	jsonStyle, err := pm.BuildPrompt("analyze", "json", "q")
	if err != nil {
		t.Fatalf("json style: %v", err)
	}
	for _, key := range []string{`"difficulty"`, `"approaches"`, `"similarQuestions"`} {
		if !strings.Contains(jsonStyle, key) {
			t.Fatalf("json prompt missing %q", key)
		}
	}
}

func TestBuildPromptUnknownModeOrStyle(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager failed: %v", err)
	}

	if _, err := pm.BuildPrompt("summarize", "json", "q"); err == nil {
		t.Fatal("unknown mode accepted")
	}
	if _, err := pm.BuildPrompt("analyze", "haiku", "q"); err == nil {
		t.Fatal("unknown style accepted")
	}
}
