package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GenomicMedLab/wags-tails/internal/cli"
	"github.com/GenomicMedLab/wags-tails/internal/logger"
)

var (
	configPath string
	verbose    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wagstails",
		Short: "Data acquisition tool for biomedical reference datasets",
		Long: `wagstails fetches versioned reference data from biomedical sources
(ChEMBL, Mondo, RxNorm, and others) and caches it locally, so repeat
requests reuse the copy already on disk.`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := "info"
			if verbose {
				level = "debug"
			}
			logger.InitLogger(level)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose

	// Add subcommands
	cmd.AddCommand(
		cli.NewFetchCmd(),
		cli.NewPruneCmd(),
		cli.NewDirCmd(),
		cli.NewSourcesCmd(),
		cli.NewVersionsCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
