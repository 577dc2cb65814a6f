package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/pkg/transcript"
)

// Process parses one transcript, summarizes it and writes its reports.
func (p *implProcessor) Process(ctx context.Context, path string) (*Result, error) {
	startTime := time.Now()
	res := &Result{Source: path, Name: meetingName(path)}
	ctx = logger.WithFile(ctx, res.Name)

	p.logger.Info(ctx, "Processing transcript: %s", path)

	tr, err := transcript.ParseFile(path, transcript.WithContinuations(p.cfg.Parser.AttributeContinuations))
	if err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	res.Transcript = tr
	res.Narrative = transcript.Narrative(tr)
	res.Stats = transcript.ComputeStats(tr)
	if elapsed, ok := transcript.Elapsed(tr); ok {
		res.Elapsed = elapsed
	}

	p.logger.Info(ctx, "Parsed %d entries from %d speakers (%s)",
		res.Stats.TotalEntries, res.Stats.TotalSpeakers, res.Stats.Duration)

	switch {
	case len(tr.Utterances) == 0:
		p.logger.Warn(ctx, "No speaker entries found in %s, skipping summary", path)
	case p.summarizer == nil:
		p.logger.Debug(ctx, "Summarizer disabled, writing transcript only")
	default:
		p.logger.Info(ctx, "AI summarizing: %s", res.Name)
		summary, err := p.summarizer.Summarize(ctx, res.Narrative, res.Stats)
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
		res.Summary = summary
	}

	outputs, err := p.writeOutputs(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("write outputs: %w", err)
	}
	res.Outputs = outputs

	if p.cfg.Output.ArchiveSource {
		if err := p.moveToArchived(ctx, path); err != nil {
			p.logger.Warn(ctx, "Failed to move transcript to archived folder: %v", err)
		}
	}

	p.logger.Info(ctx, "[DONE] %s -> %v (%s)", res.Name, res.Outputs, time.Since(startTime))
	return res, nil
}
