package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleDefaultSystemPrompt(t *testing.T) {
	out := Assemble(Input{Speaker: Speaker{DisplayName: "Alice"}})

	require.Len(t, out.Messages, 1)
	assert.Equal(t, "system", out.Messages[0].Role)
	assert.Equal(t, "You are Alice. Stay in character and reply as Alice only.", out.Messages[0].Content)
	assert.Empty(t, out.Warnings)
}

func TestAssembleMacroExpansion(t *testing.T) {
	out := Assemble(Input{
		Speaker: Speaker{DisplayName: "Alice", Persona: "A careful archivist."},
		Preset:  Preset{SystemTemplate: "Play {{char}}. Persona: {{persona}} Setting: {{setting}}"},
		Variables: map[string]string{
			"setting": "a rainy harbor town",
		},
	})

	require.Len(t, out.Messages, 1)
	assert.Equal(t, "Play Alice. Persona: A careful archivist. Setting: a rainy harbor town",
		out.Messages[0].Content)
}

func TestAssemblePersonaAppendedWhenTemplateOmitsIt(t *testing.T) {
	out := Assemble(Input{
		Speaker: Speaker{DisplayName: "Alice", Persona: "A careful archivist."},
		Preset:  Preset{SystemTemplate: "You are {{char}}."},
	})

	require.Len(t, out.Messages, 1)
	assert.Equal(t, "You are Alice.\n\nA careful archivist.", out.Messages[0].Content)
}

func TestAssembleUnresolvedMacroWarns(t *testing.T) {
	out := Assemble(Input{
		Speaker: Speaker{DisplayName: "Alice"},
		Preset:  Preset{SystemTemplate: "You are {{char}} in {{scenario}}."},
	})

	require.Len(t, out.Warnings, 1)
	assert.Equal(t, "unresolved macro {{scenario}}", out.Warnings[0])
	assert.Contains(t, out.Messages[0].Content, "{{scenario}}")
}

func TestAssembleHistoryLabelsOtherSpeakers(t *testing.T) {
	out := Assemble(Input{
		Speaker: Speaker{DisplayName: "Alice"},
		History: []HistoryMessage{
			{Role: "user", Content: "hello everyone", SpeakerName: "The User", Visibility: VisibilityNormal},
			{Role: "assistant", Content: "greetings", SpeakerName: "Bob", Visibility: VisibilityNormal},
			{Role: "assistant", Content: "hi there", SpeakerName: "Alice", Visibility: VisibilityNormal},
		},
	})

	require.Len(t, out.Messages, 4)
	assert.Equal(t, "The_User", out.Messages[1].Name)
	assert.Equal(t, "Bob: greetings", out.Messages[2].Content, "other speakers get labeled")
	assert.Equal(t, "hi there", out.Messages[3].Content, "own turns stay unlabeled")
}

func TestAssembleVisibility(t *testing.T) {
	out := Assemble(Input{
		Speaker: Speaker{DisplayName: "Alice"},
		History: []HistoryMessage{
			{Role: "user", Content: "visible", Visibility: VisibilityNormal},
			{Role: "user", Content: "gone", Visibility: VisibilityHidden},
			{Role: "user", Content: "kept for prompts", Visibility: VisibilityExcluded},
		},
	})

	require.Len(t, out.Messages, 3)
	assert.Equal(t, "visible", out.Messages[1].Content)
	assert.Equal(t, "kept for prompts", out.Messages[2].Content,
		"excluded affects exports, not prompt assembly")
}

func TestAssembleHistoryWindowLimit(t *testing.T) {
	history := []HistoryMessage{
		{Role: "user", Content: "one", Visibility: VisibilityNormal},
		{Role: "user", Content: "two", Visibility: VisibilityHidden},
		{Role: "user", Content: "three", Visibility: VisibilityNormal},
		{Role: "user", Content: "four", Visibility: VisibilityNormal},
	}
	out := Assemble(Input{
		Speaker: Speaker{DisplayName: "Alice"},
		History: history,
		Preset:  Preset{MaxHistoryMessages: 2},
	})

	// Hidden entries are dropped before the window applies.
	require.Len(t, out.Messages, 3)
	assert.Equal(t, "three", out.Messages[1].Content)
	assert.Equal(t, "four", out.Messages[2].Content)
}

func TestAssembleStopSequences(t *testing.T) {
	out := Assemble(Input{
		Speaker:          Speaker{DisplayName: "Alice"},
		ParticipantNames: []string{"Alice", "Bob", "Carol", "Bob", ""},
	})

	assert.Equal(t, []string{"\nBob:", "\nCarol:"}, out.StopSequences)
}

func TestAssembleDeterministic(t *testing.T) {
	in := Input{
		Speaker: Speaker{DisplayName: "Alice", Persona: "p"},
		History: []HistoryMessage{
			{Role: "user", Content: "hi", SpeakerName: "U", Visibility: VisibilityNormal},
		},
		Preset:           Preset{SystemTemplate: "{{char}} / {{persona}}"},
		ParticipantNames: []string{"Bob", "Carol"},
	}
	first := Assemble(in)
	second := Assemble(in)
	assert.Equal(t, first, second)
}
