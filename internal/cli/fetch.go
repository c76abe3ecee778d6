package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GenomicMedLab/wags-tails/internal/logger"
	"github.com/GenomicMedLab/wags-tails/pkg/source"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	var (
		fromLocal    bool
		forceRefresh bool
		specific     string
	)

	cmd := &cobra.Command{
		Use:   "fetch SOURCE...",
		Short: "Fetch the latest data for the given sources",
		Long: `Fetch the latest version of data for each named source, reusing a
locally cached copy when it already matches the newest remote release.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args, fromLocal, forceRefresh, specific)
		},
	}

	cmd.Flags().BoolVar(&fromLocal, "from-local", false, "use latest locally available data, no network calls")
	cmd.Flags().BoolVar(&forceRefresh, "force-refresh", false, "download even when a matching local copy exists")
	cmd.Flags().StringVar(&specific, "version", "", "fetch a specific version instead of the latest")

	return cmd
}

func runFetch(cmd *cobra.Command, names []string, fromLocal, forceRefresh bool, specific string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	opts := sourceOptions(cfg)

	// Validate every name before touching anything.
	engines := make([]*source.Engine, 0, len(names))
	for _, name := range names {
		engine, err := source.New(name, opts)
		if err != nil {
			return err
		}
		engines = append(engines, engine)
	}

	req := source.Request{FromLocal: fromLocal, ForceRefresh: forceRefresh}
	for _, engine := range engines {
		var res source.Result
		var err error
		if specific != "" {
			res, err = engine.GetSpecific(cmd.Context(), specific, req)
		} else {
			res, err = engine.GetLatest(cmd.Context(), req)
		}
		if err != nil {
			return err
		}
		logger.Info("fetched data", "source", engine.Name(), "version", res.Version)
		if res.Parts != nil {
			for part, path := range res.Parts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s (%s)\n", engine.Name(), res.Version, path, part)
			}
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", engine.Name(), res.Version, res.Path)
		}
	}
	return nil
}
