package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meeting-digest/pkg/transcript"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func sampleMeeting() Meeting {
	return Meeting{
		Name: "standup",
		Stats: transcript.Stats{
			Duration:          "00:00:05.640 to 00:00:17.960",
			TotalSpeakers:     2,
			TotalEntries:      3,
			SpeakerWordCounts: map[string]int{"bob": 4, "adam": 2},
		},
		Elapsed:   12*time.Second + 320*time.Millisecond,
		Narrative: "adam: Hello there\n\nbob: one two three four",
		Summary:   "  The team said hello.  ",
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleMeeting(), fixedNow)

	assert.True(t, strings.HasPrefix(md, "# standup\n\n_2026-03-02 09:30_\n\n"))
	assert.Contains(t, md, "- **Duration:** 00:00:05.640 to 00:00:17.960\n")
	assert.Contains(t, md, "- **Length:** 12s\n")
	assert.Contains(t, md, "- **Participants:** adam, bob\n")
	assert.Contains(t, md, "- **Total entries:** 3\n")
	assert.Contains(t, md, "- adam: 2\n- bob: 4\n")
	assert.Contains(t, md, "## Summary\n\nThe team said hello.\n")
	assert.NotContains(t, md, "## Transcript")
}

func TestMarkdown_WithoutSummaryIncludesTranscript(t *testing.T) {
	m := sampleMeeting()
	m.Summary = ""

	md := Markdown(m, fixedNow)

	assert.Contains(t, md, "## Transcript\n\nadam: Hello there\n\nbob: one two three four\n")
	assert.NotContains(t, md, "## Summary")
}

func TestMarkdown_Empty(t *testing.T) {
	md := Markdown(Meeting{Name: "empty", Stats: transcript.ComputeStats(nil)}, fixedNow)

	assert.Contains(t, md, "- **Duration:** Unknown\n")
	assert.NotContains(t, md, "Length")
	assert.NotContains(t, md, "Words per speaker")
}

func TestText(t *testing.T) {
	text := Text(sampleMeeting())

	want := rule + "\nMEETING: standup\n" + rule + "\n\n" +
		"MEETING INFO:\nDuration: 00:00:05.640 to 00:00:17.960\nParticipants: adam, bob\nTotal Entries: 3\n\n" +
		"AI SUMMARY:\nThe team said hello.\n\n" + rule + "\n\n"
	assert.Equal(t, want, text)
}

func TestText_Failure(t *testing.T) {
	text := Text(Meeting{Name: "broken.vtt", Err: errors.New("read transcript: invalid utf-8 encoding")})

	assert.Contains(t, text, "MEETING: broken.vtt")
	assert.Contains(t, text, "Failed to process: read transcript: invalid utf-8 encoding")
	assert.NotContains(t, text, "AI SUMMARY")
}

func TestCombined(t *testing.T) {
	second := sampleMeeting()
	second.Name = "retro"

	out := Combined([]Meeting{sampleMeeting(), second})

	assert.Less(t, strings.Index(out, "MEETING: standup"), strings.Index(out, "MEETING: retro"))
	assert.Equal(t, "meeting_summaries_20260302_093000.txt", CombinedFileName(fixedNow))
}

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standup.docx")

	err := WriteDocx("standup", Markdown(sampleMeeting(), fixedNow), path)

	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteTranscriptDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standup_transcript.docx")
	tr := transcript.ParseString("1\n00:00:01.000 --> 00:00:02.000\nadam: hi\n\n2\n00:00:02.000 --> 00:00:03.000\nadam: there", "")

	err := WriteTranscriptDocx("standup", transcript.Turns(tr), path)

	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestCleanMarkdownInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold**", "bold"},
		{"__under__ `code`", "under code"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := cleanMarkdownInline(tt.in); got != tt.want {
				t.Errorf("cleanMarkdownInline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeadingSize(t *testing.T) {
	assert.Equal(t, uint64(16), headingSize(1))
	assert.Equal(t, uint64(14), headingSize(3))
	assert.Equal(t, uint64(fontSize), headingSize(5))
}
