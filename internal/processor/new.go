package processor

import (
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	summarizer summarizer.Summarizer
	logger     logger.Logger
	now        func() time.Time
}

// New creates a new Processor instance. A nil summarizer disables the LLM
// step and reports carry the reconstructed transcript instead.
func New(cfg *config.Config, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		summarizer: sum,
		logger:     log,
		now:        time.Now,
	}
}
