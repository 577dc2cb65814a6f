package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
)

// app holds state shared by all subcommands after flag parsing.
type app struct {
	cfgFile  string
	logLevel string

	cfg *config.Config
	log logger.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "digest",
		Short:         "Summarize WebVTT meeting transcripts",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "config.yaml", "Path to config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")

	root.AddCommand(
		newParseCommand(a),
		newSummarizeCommand(a),
		newWatchCommand(a),
		newPingCommand(a),
	)
	return root
}

// init loads configuration, falling back to defaults when the file is absent.
func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Default()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	a.cfg = cfg
	a.log = logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, nil)
	return nil
}

func (a *app) newSummarizer() (summarizer.Summarizer, error) {
	s, err := summarizer.New(a.cfg.Gemini.APIKeys, a.cfg.Gemini.Model, a.log)
	if err != nil {
		return nil, fmt.Errorf("%w (set gemini.api_keys or GEMINI_API_KEYS)", err)
	}
	return s, nil
}
