package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-digest/internal/processor"
	"github.com/nguyentantai21042004/meeting-digest/internal/watcher"
)

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch paths.input and summarize every new transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if err := ensureDirectories(a.cfg.Paths.Input, a.cfg.Paths.Output); err != nil {
				return err
			}

			sum, err := a.newSummarizer()
			if err != nil {
				return err
			}
			proc := processor.New(a.cfg, sum, a.log)

			handler := func(ctx context.Context, path string) error {
				_, err := proc.Process(ctx, path)
				return err
			}

			w, err := watcher.New(a.cfg.Paths.Input, handler, a.log, a.cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			a.log.Info(ctx, "Meeting digest is ready! Monitoring: %s, output: %s", a.cfg.Paths.Input, a.cfg.Paths.Output)
			a.log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watcher: %w", err)
			}
			a.log.Info(context.Background(), "Meeting digest stopped")
			return nil
		},
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
