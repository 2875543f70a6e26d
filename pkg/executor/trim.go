package executor

import "strings"

// TrimNonSpeakerTurns cuts the generated text at the first line where a
// non-speaker participant starts a turn ("Name:"). Group generations often
// run past the speaker's turn and begin impersonating others; only the
// speaker's portion is kept. Matching is line-aware: a name mid-sentence
// never triggers the cut.
func TrimNonSpeakerTurns(text string, otherNames []string) string {
	if len(otherNames) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, name := range otherNames {
			if name == "" {
				continue
			}
			if strings.HasPrefix(trimmed, name+":") {
				return strings.TrimRight(strings.Join(lines[:i], "\n"), " \t\n")
			}
		}
	}
	return text
}
