package source

import (
	"log/slog"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
)

// Options carries the shared collaborators handed to adapter factories.
// Zero values are replaced with defaults.
type Options struct {
	// DataDir overrides the base data directory; resolved from the
	// environment when empty.
	DataDir string

	// Client performs version-discovery calls.
	Client *wagshttp.Client

	// Downloader performs artifact byte transfers.
	Downloader download.Manager

	// Logger receives engine debug output.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Client == nil {
		o.Client = wagshttp.NewClient(wagshttp.DefaultTimeout)
	}
	if o.Downloader == nil {
		o.Downloader = download.NewManager(wagshttp.DefaultTimeout, "")
	}
	return o
}

// engineOptions translates shared options into engine options.
func (o Options) engineOptions(extra ...EngineOption) []EngineOption {
	opts := []EngineOption{WithDataDir(o.DataDir)}
	if o.Logger != nil {
		opts = append(opts, WithLogger(o.Logger))
	}
	return append(opts, extra...)
}
