package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GenomicMedLab/wags-tails/pkg/source"
	"github.com/GenomicMedLab/wags-tails/pkg/storage"
)

// NewDirCmd creates the dir command.
func NewDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir [SOURCE]",
		Short: "Print the resolved data directory",
		Long: `Print the base data directory, or the cache directory of a single
source when one is named.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if len(args) == 0 {
				dir, err := storage.ResolveDataDir(cfg.Settings.DataDir)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			}
			engine, err := source.New(args[0], sourceOptions(cfg))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), engine.DataDir())
			return nil
		},
	}
}
