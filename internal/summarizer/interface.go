package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/meeting-digest/pkg/transcript"
)

// Summarizer turns a reconstructed meeting transcript into a narrative
// LLM-generated summary.
type Summarizer interface {
	Summarize(ctx context.Context, narrative string, stats transcript.Stats) (string, error)
	Ping(ctx context.Context) error
}

// generator performs a single LLM call with one API key.
type generator interface {
	Generate(ctx context.Context, apiKey, model, prompt string) (string, error)
}
