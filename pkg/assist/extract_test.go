package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractor_Languages(t *testing.T) {
	var e Extractor

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single language",
			text:     "What are some good Python repositories for beginners?",
			expected: []string{"python"},
		},
		{
			name: "multiple languages in vocabulary order",
			// "rust" precedes "go" in the input but not in the vocabulary
			text:     "should I learn rust or go first",
			expected: []string{"go", "rust"},
		},
		{
			name:     "whole word only",
			text:     "I deployed a golang service", // "go" inside "golang" must not match
			expected: nil,
		},
		{
			name:     "case insensitive",
			text:     "JavaScript and TypeScript projects",
			expected: []string{"javascript", "typescript"},
		},
		{
			name:     "no languages",
			text:     "how do I contribute",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Languages(tt.text))
		})
	}
}

func TestExtractor_Interests(t *testing.T) {
	var e Extractor

	got := e.Interests("I'm into Machine Learning and web development")
	assert.Equal(t, []string{"web", "machine learning"}, got)

	// Substring matching over-matches on purpose: "ai" inside "maintain".
	got = e.Interests("how do I maintain a project")
	assert.Equal(t, []string{"ai"}, got)
}

func TestExtractor_Interests_WordBoundary(t *testing.T) {
	e := Extractor{WordBoundary: true}

	// With boundary checking the "ai" false positive disappears.
	assert.Nil(t, e.Interests("how do I maintain a project"))
	assert.Equal(t, []string{"ai"}, e.Interests("interested in ai research"))
}

func TestExtractRepo(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fallback string
		expected string
	}{
		{
			name:     "contribute phrase",
			text:     "I want to contribute to facebook/react",
			expected: "facebook/react",
		},
		{
			name:     "issues phrase",
			text:     "help me find issues in a/b",
			expected: "a/b",
		},
		{
			name:     "first token wins",
			text:     "compare golang/go with rust-lang/rust",
			expected: "golang/go",
		},
		{
			name:     "no pattern, no history",
			text:     "what should I work on",
			expected: "",
		},
		{
			name:     "no pattern, falls back to session history",
			text:     "what should I work on",
			fallback: "x/y",
			expected: "x/y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractRepo(tt.text, tt.fallback))
		})
	}
}
