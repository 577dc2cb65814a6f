package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/pkg/transcript"
)

const rule = "======================================================================"

// Meeting is everything a report renders for one transcript.
type Meeting struct {
	Name      string
	Stats     transcript.Stats
	Elapsed   time.Duration
	Narrative string
	Summary   string
	Err       error
}

func durationLabel(s transcript.Stats) string {
	if s.Duration == "" {
		return "Unknown"
	}
	return s.Duration
}

// Markdown renders a single meeting summary. When there is no summary the
// reconstructed transcript is included instead.
func Markdown(m Meeting, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", m.Name, now.Format("2006-01-02 15:04"))

	b.WriteString("## Meeting Info\n\n")
	fmt.Fprintf(&b, "- **Duration:** %s\n", durationLabel(m.Stats))
	if m.Elapsed > 0 {
		fmt.Fprintf(&b, "- **Length:** %s\n", m.Elapsed.Round(time.Second))
	}
	fmt.Fprintf(&b, "- **Participants:** %s\n", strings.Join(m.Stats.Participants(), ", "))
	fmt.Fprintf(&b, "- **Total entries:** %d\n\n", m.Stats.TotalEntries)

	if len(m.Stats.SpeakerWordCounts) > 0 {
		b.WriteString("### Words per speaker\n\n")
		for _, name := range m.Stats.Participants() {
			fmt.Fprintf(&b, "- %s: %d\n", name, m.Stats.SpeakerWordCounts[name])
		}
		b.WriteString("\n")
	}

	if summary := strings.TrimSpace(m.Summary); summary != "" {
		fmt.Fprintf(&b, "## Summary\n\n%s\n", summary)
	} else if m.Narrative != "" {
		fmt.Fprintf(&b, "## Transcript\n\n%s\n", m.Narrative)
	}

	return b.String()
}

// Text renders the plain-text block used in combined summary files.
func Text(m Meeting) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nMEETING: %s\n%s\n\n", rule, m.Name, rule)
	if m.Err != nil {
		fmt.Fprintf(&b, "Failed to process: %v\n\n", m.Err)
		return b.String()
	}

	b.WriteString("MEETING INFO:\n")
	fmt.Fprintf(&b, "Duration: %s\n", durationLabel(m.Stats))
	fmt.Fprintf(&b, "Participants: %s\n", strings.Join(m.Stats.Participants(), ", "))
	fmt.Fprintf(&b, "Total Entries: %d\n\n", m.Stats.TotalEntries)

	summary := strings.TrimSpace(m.Summary)
	if summary == "" {
		summary = "(no summary generated)"
	}
	fmt.Fprintf(&b, "AI SUMMARY:\n%s\n\n%s\n\n", summary, rule)

	return b.String()
}

// Combined concatenates the text blocks of all meetings in order.
func Combined(meetings []Meeting) string {
	var b strings.Builder
	for _, m := range meetings {
		b.WriteString(Text(m))
	}
	return b.String()
}

// CombinedFileName is the default name of a combined summary file.
func CombinedFileName(now time.Time) string {
	return fmt.Sprintf("meeting_summaries_%s.txt", now.Format("20060102_150405"))
}
