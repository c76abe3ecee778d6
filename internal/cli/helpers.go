// Package cli implements the wags-tails command-line interface.
package cli

import (
	"github.com/GenomicMedLab/wags-tails/internal/logger"
	"github.com/GenomicMedLab/wags-tails/pkg/config"
	"github.com/GenomicMedLab/wags-tails/pkg/download"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
	"github.com/GenomicMedLab/wags-tails/pkg/source"
)

// CLI package variables set by the root command.
var (
	ConfigPath *string
	Verbose    *bool
)

func loadConfig() (*config.Config, error) {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return config.LoadConfig(path)
}

// sourceOptions builds the shared collaborators for source engines from the
// loaded configuration.
func sourceOptions(cfg *config.Config) source.Options {
	return source.Options{
		DataDir:    cfg.Settings.DataDir,
		Client:     wagshttp.NewClient(cfg.Settings.HTTPTimeout),
		Downloader: download.NewManager(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent),
		Logger:     logger.GetLogger(),
	}
}
