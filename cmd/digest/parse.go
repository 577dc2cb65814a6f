package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-digest/pkg/transcript"
)

func newParseCommand(a *app) *cobra.Command {
	var (
		format        string
		continuations bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file.vtt>",
		Short: "Print the reconstructed conversation and meeting stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := transcript.ParseFile(args[0],
				transcript.WithContinuations(continuations || a.cfg.Parser.AttributeContinuations))
			if err != nil {
				return err
			}
			stats := transcript.ComputeStats(tr)
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Transcript *transcript.Transcript `json:"transcript"`
					Narrative  string                 `json:"narrative"`
					Stats      transcript.Stats       `json:"stats"`
				}{tr, transcript.Narrative(tr), stats})
			case "text":
				fmt.Fprintf(out, "Duration: %s\n", stats.Duration)
				fmt.Fprintf(out, "Speakers: %d\n", stats.TotalSpeakers)
				fmt.Fprintf(out, "Entries: %d\n", stats.TotalEntries)
				for _, name := range stats.Participants() {
					fmt.Fprintf(out, "  %s: %d words\n", name, stats.SpeakerWordCounts[name])
				}
				fmt.Fprintf(out, "\n%s\n", transcript.Narrative(tr))
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&continuations, "continuations", false, "Attribute unlabelled cues to the previous speaker")
	return cmd
}
