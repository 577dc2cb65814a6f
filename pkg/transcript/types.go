// Package transcript parses WebVTT meeting transcripts into speaker
// utterances and derives turn-merged text and meeting statistics.
package transcript

// Utterance is one speaker-attributed subtitle cue.
type Utterance struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
}

// Transcript is the result of a single parse call. Speakers holds each
// distinct utterance speaker once, in order of first appearance.
type Transcript struct {
	Utterances []Utterance `json:"conversations"`
	Speakers   []string    `json:"speakers"`
	Source     string      `json:"file_path"`
}

// Turn is a maximal run of consecutive utterances by the same speaker.
type Turn struct {
	Speaker string
	Text    string
}

// Stats are aggregate figures derived from a Transcript.
type Stats struct {
	Duration          string         `json:"duration,omitempty"`
	TotalSpeakers     int            `json:"total_speakers"`
	TotalEntries      int            `json:"total_entries"`
	SpeakerWordCounts map[string]int `json:"speaker_word_counts"`
}
