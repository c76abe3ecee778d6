package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GenomicMedLab/wags-tails/pkg/source"
)

// NewSourcesCmd creates the sources command.
func NewSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the available data sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range source.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// NewVersionsCmd creates the versions command.
func NewVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions SOURCE",
		Short: "List available versions for a source, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			engine, err := source.New(args[0], sourceOptions(cfg))
			if err != nil {
				return err
			}
			versions, err := engine.Versions(cmd.Context())
			if err != nil {
				return err
			}
			for _, v := range versions {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}
