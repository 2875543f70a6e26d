// Package prompt assembles the ordered message list sent to the LLM for a
// single speaker turn. Assembly is deterministic: identical input yields an
// identical result, so a requeued run rebuilds the same prompt.
package prompt

import (
	"fmt"
	"strings"
)

// Visibility values mirrored from the message schema.
const (
	VisibilityNormal   = "normal"
	VisibilityExcluded = "excluded"
	VisibilityHidden   = "hidden"
)

// Speaker describes the membership the prompt is assembled for.
type Speaker struct {
	DisplayName string
	Persona     string
	IsUser      bool
}

// HistoryMessage is one timeline entry in the prompt window, oldest first.
type HistoryMessage struct {
	Role        string // "user", "assistant", "system"
	Content     string
	SpeakerName string
	Visibility  string
}

// Preset holds the prompt template configuration. Kept minimal: the
// surrounding system treats assembly as a fixed-shape black box.
type Preset struct {
	SystemTemplate     string
	MaxHistoryMessages int // 0 means unlimited
}

// Input is the full assembler input.
type Input struct {
	Speaker   Speaker
	History   []HistoryMessage
	Preset    Preset
	Variables map[string]string // macro substitutions for the system template

	// ParticipantNames lists all active participants; non-speaker names
	// become stop sequences so the model stops before impersonating them.
	ParticipantNames []string
}

// Message is one assembled prompt entry.
type Message struct {
	Role    string
	Content string
	Name    string
}

// Output is the assembler result.
type Output struct {
	Messages      []Message
	StopSequences []string
	Warnings      []string
}

const defaultSystemTemplate = "You are {{char}}. Stay in character and reply as {{char}} only."

// Assemble builds the prompt for a speaker turn. Hidden messages never
// enter the window; excluded messages do (exclusion applies to exports,
// not prompts).
func Assemble(in Input) Output {
	var out Output

	tmpl := in.Preset.SystemTemplate
	if tmpl == "" {
		tmpl = defaultSystemTemplate
	}
	system, warnings := expandMacros(tmpl, in.Speaker, in.Variables)
	out.Warnings = warnings
	out.Messages = append(out.Messages, Message{Role: "system", Content: system})

	history := windowHistory(in.History, in.Preset.MaxHistoryMessages)
	for _, h := range history {
		msg := Message{Role: h.Role, Content: h.Content}
		// In group conversations the model needs to know who said what.
		// Assistant turns from other speakers are labeled inline.
		if h.Role == "assistant" && h.SpeakerName != "" && h.SpeakerName != in.Speaker.DisplayName {
			msg.Content = h.SpeakerName + ": " + h.Content
		}
		if h.Role == "user" && h.SpeakerName != "" {
			msg.Name = sanitizeName(h.SpeakerName)
		}
		out.Messages = append(out.Messages, msg)
	}

	out.StopSequences = stopSequences(in.Speaker.DisplayName, in.ParticipantNames)
	return out
}

// windowHistory drops hidden messages, then keeps the newest limit entries.
func windowHistory(history []HistoryMessage, limit int) []HistoryMessage {
	visible := make([]HistoryMessage, 0, len(history))
	for _, h := range history {
		if h.Visibility == VisibilityHidden {
			continue
		}
		visible = append(visible, h)
	}
	if limit > 0 && len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}
	return visible
}

// stopSequences returns "Name:" markers for every participant other than
// the speaker, in input order for determinism.
func stopSequences(speakerName string, participants []string) []string {
	seqs := make([]string, 0, len(participants))
	seen := make(map[string]bool, len(participants))
	for _, name := range participants {
		if name == "" || name == speakerName || seen[name] {
			continue
		}
		seen[name] = true
		seqs = append(seqs, "\n"+name+":")
	}
	return seqs
}

// expandMacros substitutes {{key}} placeholders. {{char}} resolves to the
// speaker name; unknown macros are left intact and reported as warnings.
func expandMacros(tmpl string, speaker Speaker, vars map[string]string) (string, []string) {
	var warnings []string
	result := tmpl

	resolved := map[string]string{"char": speaker.DisplayName}
	if speaker.Persona != "" {
		resolved["persona"] = speaker.Persona
	}
	for k, v := range vars {
		resolved[k] = v
	}

	for key, val := range resolved {
		result = strings.ReplaceAll(result, "{{"+key+"}}", val)
	}

	if speaker.Persona != "" && !strings.Contains(tmpl, "{{persona}}") {
		result = result + "\n\n" + speaker.Persona
	}

	for _, key := range unresolvedMacros(result) {
		warnings = append(warnings, fmt.Sprintf("unresolved macro {{%s}}", key))
	}
	return result, warnings
}

func unresolvedMacros(s string) []string {
	var keys []string
	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			return keys
		}
		end := strings.Index(s[start:], "}}")
		if end < 0 {
			return keys
		}
		keys = append(keys, s[start+2:start+end])
		s = s[start+end+2:]
	}
}

// sanitizeName makes a display name safe for the API name field, which
// rejects whitespace.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
