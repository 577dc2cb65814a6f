package processor

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/report"
	"github.com/nguyentantai21042004/meeting-digest/pkg/transcript"
)

// Result describes one processed transcript.
type Result struct {
	Source     string
	Name       string
	Transcript *transcript.Transcript
	Narrative  string
	Stats      transcript.Stats
	Elapsed    time.Duration
	Summary    string
	Outputs    []string
	Err        error
}

// Meeting converts the result into its report form.
func (r *Result) Meeting() report.Meeting {
	return report.Meeting{
		Name:      r.Name,
		Stats:     r.Stats,
		Elapsed:   r.Elapsed,
		Narrative: r.Narrative,
		Summary:   r.Summary,
		Err:       r.Err,
	}
}

func meetingName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
