package transcript

import (
	"sort"
	"strings"
	"time"
)

// ComputeStats derives meeting statistics. An empty or nil transcript
// yields zero counts, an empty duration and an empty word-count map.
func ComputeStats(t *Transcript) Stats {
	stats := Stats{SpeakerWordCounts: make(map[string]int)}
	if t == nil || len(t.Utterances) == 0 {
		return stats
	}

	first := t.Utterances[0]
	last := t.Utterances[len(t.Utterances)-1]
	stats.Duration = first.StartTime + " to " + last.EndTime

	for _, u := range t.Utterances {
		if u.Speaker == "" {
			continue
		}
		stats.SpeakerWordCounts[u.Speaker] += len(strings.Fields(u.Text))
	}

	stats.TotalEntries = len(t.Utterances)
	stats.TotalSpeakers = len(t.Speakers)
	return stats
}

// Participants returns the speakers in stats sorted by name.
func (s Stats) Participants() []string {
	names := make([]string, 0, len(s.SpeakerWordCounts))
	for name := range s.SpeakerWordCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Elapsed is the time between the first cue's start and the last cue's
// end. It returns false when either timestamp cannot be interpreted.
func Elapsed(t *Transcript) (time.Duration, bool) {
	if t == nil || len(t.Utterances) == 0 {
		return 0, false
	}
	start, err := ParseTimestamp(t.Utterances[0].StartTime)
	if err != nil {
		return 0, false
	}
	end, err := ParseTimestamp(t.Utterances[len(t.Utterances)-1].EndTime)
	if err != nil || end < start {
		return 0, false
	}
	return end - start, true
}
