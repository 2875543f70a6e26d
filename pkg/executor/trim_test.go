package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimNonSpeakerTurns(t *testing.T) {
	others := []string{"Bob", "Carol Jones"}

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "no impersonation keeps text",
			text:     "Hello there.\nHow are you today?",
			expected: "Hello there.\nHow are you today?",
		},
		{
			name:     "cuts at first non-speaker turn",
			text:     "I think we should go.\nBob: I agree!\nMore stolen lines.",
			expected: "I think we should go.",
		},
		{
			name:     "multi-word name matches",
			text:     "First line.\nCarol Jones: my turn now",
			expected: "First line.",
		},
		{
			name:     "leading whitespace before name still cuts",
			text:     "Fine.\n   Bob: indented turn",
			expected: "Fine.",
		},
		{
			name:     "name mid-sentence does not cut",
			text:     "I told Bob: you are wrong.\nStill my turn.",
			expected: "I told Bob: you are wrong.\nStill my turn.",
		},
		{
			name:     "name without colon does not cut",
			text:     "Speaking of Bob\nBob said nothing",
			expected: "Speaking of Bob\nBob said nothing",
		},
		{
			name:     "impersonation on first line yields empty",
			text:     "Bob: the whole reply is stolen",
			expected: "",
		},
		{
			name:     "trailing blank lines trimmed after cut",
			text:     "Mine.\n\n\nBob: stolen",
			expected: "Mine.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrimNonSpeakerTurns(tt.text, others))
		})
	}
}

func TestTrimNonSpeakerTurnsNoOtherNames(t *testing.T) {
	text := "Bob: looks like a turn but nobody else exists"
	assert.Equal(t, text, TrimNonSpeakerTurns(text, nil))
	assert.Equal(t, text, TrimNonSpeakerTurns(text, []string{""}))
}
