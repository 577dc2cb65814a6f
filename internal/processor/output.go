package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-digest/internal/report"
	"github.com/nguyentantai21042004/meeting-digest/pkg/transcript"
)

// writeOutputs writes the markdown report and any enabled docx variants.
func (p *implProcessor) writeOutputs(ctx context.Context, res *Result) ([]string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	md := report.Markdown(res.Meeting(), p.now())
	mdPath := filepath.Join(p.cfg.Paths.Output, res.Name+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", mdPath, err)
	}
	outputs := []string{mdPath}

	if p.cfg.Output.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Output, res.Name+".docx")
		if err := report.WriteDocx(res.Name, md, docxPath); err != nil {
			return outputs, fmt.Errorf("write %s: %w", docxPath, err)
		}
		outputs = append(outputs, docxPath)
	}

	if p.cfg.Output.TranscriptDocx {
		docxPath := filepath.Join(p.cfg.Paths.Output, res.Name+"_transcript.docx")
		if err := report.WriteTranscriptDocx(res.Name, transcript.Turns(res.Transcript), docxPath); err != nil {
			return outputs, fmt.Errorf("write %s: %w", docxPath, err)
		}
		outputs = append(outputs, docxPath)
	}

	p.logger.Debug(ctx, "Wrote %d output files", len(outputs))
	return outputs, nil
}
