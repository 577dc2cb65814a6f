package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-digest/internal/processor"
	"github.com/nguyentantai21042004/meeting-digest/internal/report"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
)

func newSummarizeCommand(a *app) *cobra.Command {
	var (
		dryRun   bool
		combined string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "summarize <file.vtt>...",
		Short: "Summarize one or more transcripts with Gemini",
		Long: `Parse each transcript, send the reconstructed conversation to Gemini and
write a markdown report per meeting into the output directory.

Examples:
  digest summarize standup.vtt retro.vtt
  digest summarize --dry-run meetings/*.vtt
  digest summarize --combined all.txt meetings/*.vtt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if output != "" {
				a.cfg.Paths.Output = output
			}

			var sum summarizer.Summarizer
			if !dryRun {
				s, err := a.newSummarizer()
				if err != nil {
					return err
				}
				sum = s
			}

			proc := processor.New(a.cfg, sum, a.log)
			results, err := proc.ProcessAll(ctx, args)
			if err != nil {
				return err
			}

			meetings := make([]report.Meeting, 0, len(results))
			failed := 0
			for _, r := range results {
				meetings = append(meetings, r.Meeting())
				if r.Err != nil {
					failed++
					continue
				}
				for _, out := range r.Outputs {
					fmt.Fprintln(cmd.OutOrStdout(), out)
				}
			}

			if combined != "" {
				if combined == "auto" {
					combined = filepath.Join(a.cfg.Paths.Output, report.CombinedFileName(time.Now()))
				}
				if err := os.MkdirAll(filepath.Dir(combined), 0755); err != nil {
					return fmt.Errorf("create combined report dir: %w", err)
				}
				if err := os.WriteFile(combined, []byte(report.Combined(meetings)), 0644); err != nil {
					return fmt.Errorf("write combined report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), combined)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d transcripts failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Skip Gemini and write stats and transcript only")
	cmd.Flags().StringVar(&combined, "combined", "", `Also write all summaries to one text file ("auto" picks a timestamped name)`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Override paths.output")
	return cmd
}
