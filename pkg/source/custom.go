package source

import (
	"context"

	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
)

// CustomSource adapts caller-supplied acquisition callbacks to the
// DataSource contract, for datasets whose fetching is too involved or too
// site-specific to ship as a built-in adapter.
type CustomSource struct {
	// SourceName names the source; it sets the cache subdirectory and the
	// default filename base.
	SourceName string

	// FileSuffix is the artifact file extension, without leading dot.
	FileSuffix string

	// FileNameBase overrides the filename base when non-empty.
	FileNameBase string

	// LatestVersionFunc acquires the latest version value.
	LatestVersionFunc func(ctx context.Context) (string, error)

	// DownloadFunc acquires the given version, leaving a fully-formed
	// artifact at dest.
	DownloadFunc func(ctx context.Context, version, dest string) error
}

// NewCustom creates a retrieval engine around caller-supplied callbacks.
func NewCustom(src CustomSource, opts Options) (*Engine, error) {
	if src.SourceName == "" || src.FileSuffix == "" {
		return nil, pkgerrors.Wrap(pkgerrors.ErrInvalidConfig, "custom source requires a name and file suffix")
	}
	if src.LatestVersionFunc == nil || src.DownloadFunc == nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrInvalidConfig, "custom source requires version and download callbacks")
	}
	opts = opts.withDefaults()
	return NewEngine(&src, opts.engineOptions()...)
}

func (s *CustomSource) Name() string     { return s.SourceName }
func (s *CustomSource) FileType() string { return s.FileSuffix }

// FileName returns the filename base used for cached artifacts.
func (s *CustomSource) FileName() string {
	if s.FileNameBase != "" {
		return s.FileNameBase
	}
	return s.SourceName
}

func (s *CustomSource) FetchLatestVersion(ctx context.Context) (string, error) {
	return s.LatestVersionFunc(ctx)
}

func (s *CustomSource) Download(ctx context.Context, version, dest string) error {
	return s.DownloadFunc(ctx, version, dest)
}
