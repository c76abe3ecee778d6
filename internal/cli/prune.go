package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GenomicMedLab/wags-tails/pkg/source"
)

// NewPruneCmd creates the prune command.
func NewPruneCmd() *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune SOURCE...",
		Short: "Delete old cached files for the given sources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(cmd, args, keep)
		},
	}

	cmd.Flags().IntVarP(&keep, "keep", "k", 1, "number of most recent files to keep per source")

	return cmd
}

func runPrune(cmd *cobra.Command, names []string, keep int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	opts := sourceOptions(cfg)

	for _, name := range names {
		engine, err := source.New(name, opts)
		if err != nil {
			return err
		}
		removed, err := engine.Prune(keep)
		if err != nil {
			return err
		}
		for _, path := range removed {
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
		}
	}
	return nil
}
