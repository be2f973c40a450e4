package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thomaskoefod/devarticles/internal/config"
	"github.com/thomaskoefod/devarticles/internal/logging"
	"github.com/thomaskoefod/devarticles/internal/source"
	"github.com/thomaskoefod/devarticles/internal/store"
	"github.com/thomaskoefod/devarticles/internal/tui"
	"github.com/thomaskoefod/devarticles/pkg/models"
)

var (
	cfgFile    string
	dataPath   string
	dataFormat string
	verbose    bool
	cfg        *config.Config
	logger     *slog.Logger
	logCloser  io.Closer
	version    = "dev"
)

// rootCmd runs the card browser when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "devarticles",
	Short: "Browse developer article cards in the terminal",
	Long: `devarticles shows a snapshot of developer articles as a list of cards.

Cards can be searched by author or title, sorted by author or date,
limited to the current year and liked. Likes live for the session only.

Example usage:
  devarticles                           # Browse the built-in snapshot
  devarticles --data articles.json      # Browse a JSON payload
  devarticles --data feed.xml           # Browse an RSS or Atom file
  devarticles snapshot cards.db         # Write the snapshot to SQLite
  devarticles config init               # Write a default config file`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: runBrowser,
}

// Execute runs the root command and closes the log file afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/devarticles/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "snapshot file (default: built-in snapshot)")
	rootCmd.PersistentFlags().StringVar(&dataFormat, "format", "", "snapshot format: json, sqlite or feed (default: by extension)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// initConfig loads the configuration, applies flag overrides and sets up logging.
func initConfig() error {
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadOrDefault(config.DefaultConfigPath())
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if dataPath != "" {
		cfg.Data.Path = dataPath
	}
	if dataFormat != "" {
		cfg.Data.Format = dataFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logCloser, err = logging.New(cfg.Log, verbose)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		"data_path", cfg.Data.Path,
		"data_format", cfg.Data.Format,
		"default_sort", cfg.UI.DefaultSort,
	)

	return nil
}

func loadCards() ([]models.Card, error) {
	format, err := cfg.Data.SnapshotFormat()
	if err != nil {
		return nil, err
	}

	cards, err := source.Load(cfg.Data.Path, format, logger)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return cards, nil
}

func runBrowser(cmd *cobra.Command, args []string) error {
	cards, err := loadCards()
	if err != nil {
		return err
	}

	m, err := tui.New(cfg, store.New(cards, logger), tui.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("starting browser", "cards", len(cards))
	return tui.Run(m)
}
