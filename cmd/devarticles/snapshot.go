package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thomaskoefod/devarticles/internal/source"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <out.db>",
	Short: "Write the loaded snapshot to a SQLite database",
	Long: `Write the configured snapshot (or the built-in one) to a new SQLite
database that can later be opened with --data.

An existing file is never overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := loadCards()
		if err != nil {
			return err
		}

		if err := source.WriteSQLiteSnapshot(args[0], cards); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}

		logger.Info("snapshot written", "path", args[0], "cards", len(cards))
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d cards to %s\n", len(cards), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
