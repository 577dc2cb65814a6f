package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the configured Gemini key and model respond",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := a.newSummarizer()
			if err != nil {
				return err
			}
			if err := sum.Ping(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API connection successful")
			return nil
		},
	}
}
