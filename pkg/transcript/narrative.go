package transcript

import "strings"

// Turns merges consecutive utterances by the same speaker.
func Turns(t *Transcript) []Turn {
	if t == nil || len(t.Utterances) == 0 {
		return nil
	}

	turns := make([]Turn, 0)
	var current strings.Builder
	speaker := ""

	flush := func() {
		if speaker != "" && current.Len() > 0 {
			turns = append(turns, Turn{Speaker: speaker, Text: current.String()})
		}
		current.Reset()
	}

	for _, u := range t.Utterances {
		if u.Speaker == speaker {
			current.WriteString(" ")
			current.WriteString(u.Text)
			continue
		}
		flush()
		speaker = u.Speaker
		current.WriteString(u.Text)
	}
	flush()

	return turns
}

// Narrative renders the transcript as "speaker: text" turns separated by
// a blank line. This is the text handed to the summarizer.
func Narrative(t *Transcript) string {
	turns := Turns(t)
	blocks := make([]string, 0, len(turns))
	for _, turn := range turns {
		blocks = append(blocks, turn.Speaker+": "+turn.Text)
	}
	return strings.Join(blocks, "\n\n")
}
