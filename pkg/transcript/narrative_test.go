package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNarrative(t *testing.T) {
	tests := []struct {
		name       string
		utterances []Utterance
		want       string
	}{
		{
			name: "merges consecutive turns",
			utterances: []Utterance{
				{Speaker: "A", Text: "hi"},
				{Speaker: "A", Text: "there"},
				{Speaker: "B", Text: "yo"},
			},
			want: "A: hi there\n\nB: yo",
		},
		{
			name: "speaker returning later starts a new turn",
			utterances: []Utterance{
				{Speaker: "A", Text: "one"},
				{Speaker: "B", Text: "two"},
				{Speaker: "A", Text: "three"},
			},
			want: "A: one\n\nB: two\n\nA: three",
		},
		{
			name:       "single utterance",
			utterances: []Utterance{{Speaker: "solo", Text: "just me"}},
			want:       "solo: just me",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Narrative(&Transcript{Utterances: tt.utterances})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNarrative_Nil(t *testing.T) {
	assert.Equal(t, "", Narrative(nil))
	assert.Nil(t, Turns(nil))
}

func TestTurns(t *testing.T) {
	result := ParseString(sampleVTT, "")

	turns := Turns(result)

	assert.Equal(t, []Turn{
		{Speaker: "adamnoel", Text: "Drive in teams. I think that's what they want."},
		{Speaker: "Misty Pearson, South Carolina", Text: "Morning."},
		{Speaker: "adamnoel", Text: "Morning. Turn it up. There you go!"},
	}, turns)
}
