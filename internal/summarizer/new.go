package summarizer

import (
	"sync"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
)

type implSummarizer struct {
	apiKeys []string
	logger  logger.Logger
	model   string
	gen     generator

	mu         sync.Mutex
	currentKey int
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) (Summarizer, error) {
	s, err := newWithGenerator(apiKeys, model, log, geminiGenerator{})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newWithGenerator(apiKeys []string, model string, log logger.Logger, gen generator) (*implSummarizer, error) {
	keys := make([]string, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, ErrNoAPIKeys
	}
	if model == "" {
		model = defaultModel
	}

	return &implSummarizer{
		apiKeys: keys,
		logger:  log,
		model:   model,
		gen:     gen,
	}, nil
}
