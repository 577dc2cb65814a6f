package transcript

import (
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	headerToken     = "WEBVTT"
	timestampMarker = " --> "
	blockSeparator  = "\n\n"
)

// speakerLineRegex matches "speaker: text", splitting on the first colon.
var speakerLineRegex = regexp.MustCompile(`^([^:]+):\s*(.+)$`)

type options struct {
	continuations bool
}

// Option configures a parse call.
type Option func(*options)

// WithContinuations attributes cues that carry no "speaker:" label to the
// speaker of the preceding utterance instead of dropping them.
func WithContinuations(enabled bool) Option {
	return func(o *options) {
		o.continuations = enabled
	}
}

// ParseFile reads and parses the transcript at path.
func ParseFile(path string, opts ...Option) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Source: path, Err: err}
	}
	defer f.Close()

	return Parse(f, path, opts...)
}

// Parse reads a whole document from r. source is recorded on the result
// and used in error messages.
func Parse(r io.Reader, source string, opts ...Option) (*Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Source: source, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &ReadError{Source: source, Err: ErrInvalidEncoding}
	}
	return ParseString(string(data), source, opts...), nil
}

// ParseString parses an in-memory document. It cannot fail: cues that are
// not well formed are skipped.
func ParseString(content, source string, opts ...Option) *Transcript {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	result := &Transcript{
		Utterances: make([]Utterance, 0),
		Speakers:   make([]string, 0),
		Source:     source,
	}
	seen := make(map[string]bool)

	for _, block := range strings.Split(content, blockSeparator) {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" || trimmed == headerToken {
			continue
		}

		lines := strings.Split(trimmed, "\n")
		if len(lines) < 3 {
			continue
		}

		start, end, ok := parseTimestampLine(lines[1])
		if !ok {
			continue
		}

		body := strings.Join(lines[2:], " ")
		speaker, text, labelled := extractSpeaker(body)
		if !labelled && o.continuations && len(result.Utterances) > 0 {
			speaker = result.Utterances[len(result.Utterances)-1].Speaker
			text = strings.TrimSpace(body)
		}
		if speaker == "" || text == "" {
			continue
		}

		if !seen[speaker] {
			seen[speaker] = true
			result.Speakers = append(result.Speakers, speaker)
		}
		result.Utterances = append(result.Utterances, Utterance{
			StartTime: start,
			EndTime:   end,
			Speaker:   speaker,
			Text:      text,
		})
	}

	return result
}

// parseTimestampLine splits "00:00:05.640 --> 00:00:17.960".
func parseTimestampLine(line string) (start, end string, ok bool) {
	if !strings.Contains(line, strings.TrimSpace(timestampMarker)) {
		return "", "", false
	}
	parts := strings.Split(line, timestampMarker)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// extractSpeaker reports labelled=false when body has no "name:" prefix.
func extractSpeaker(body string) (speaker, text string, labelled bool) {
	m := speakerLineRegex.FindStringSubmatch(body)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// HasSpeaker reports whether name spoke at least once.
func (t *Transcript) HasSpeaker(name string) bool {
	if t == nil {
		return false
	}
	for _, s := range t.Speakers {
		if s == name {
			return true
		}
	}
	return false
}
