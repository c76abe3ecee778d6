// Package source implements the versioned-artifact retrieval protocol: the
// DataSource adapter contracts, the Engine that decides between cached and
// freshly downloaded artifacts, and the built-in dataset adapters.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	"github.com/GenomicMedLab/wags-tails/pkg/fsutil"
	"github.com/GenomicMedLab/wags-tails/pkg/storage"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

// Request carries the retrieval flags common to all engine operations.
type Request struct {
	// FromLocal restricts the request to locally cached data; no network
	// call is made.
	FromLocal bool

	// ForceRefresh downloads the data even when a matching artifact is
	// already cached.
	ForceRefresh bool
}

func (r Request) validate() error {
	if r.FromLocal && r.ForceRefresh {
		return pkgerrors.ErrExclusiveOptions
	}
	return nil
}

// Result describes a materialized artifact.
type Result struct {
	// Path is the primary artifact path. For multi-file sources it is the
	// path of the first part.
	Path string

	// Parts maps part names to artifact paths for multi-file sources; nil
	// otherwise.
	Parts map[string]string

	// Version is the version value the artifact encodes.
	Version string
}

// Engine orchestrates retrieval requests against one DataSource and its
// cache directory.
type Engine struct {
	src DataSource
	dir string
	cmp version.Comparator
	log *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	dataDir string
	cmp     version.Comparator
	log     *slog.Logger
}

// WithDataDir overrides the base data directory for this engine. When empty,
// the directory is resolved from the environment (see storage.ResolveDataDir).
func WithDataDir(dir string) EngineOption {
	return func(c *engineConfig) { c.dataDir = dir }
}

// WithComparator sets the version comparator used for local-file discovery.
// The default is lexicographic filename ordering; sources with dotted
// numeric versions need version.DottedNumeric.
func WithComparator(cmp version.Comparator) EngineOption {
	return func(c *engineConfig) { c.cmp = cmp }
}

// WithLogger sets the logger for this engine instance.
func WithLogger(log *slog.Logger) EngineOption {
	return func(c *engineConfig) { c.log = log }
}

// NewEngine creates a retrieval engine for the given source. The source's
// cache directory is created if missing.
func NewEngine(src DataSource, opts ...EngineOption) (*Engine, error) {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	baseDir, err := storage.ResolveDataDir(cfg.dataDir)
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(baseDir, src.Name())
	if err := fsutil.EnsureDir(dir); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to create cache directory for %s", src.Name())
	}

	log := cfg.log
	if log == nil {
		log = slog.Default()
	}
	return &Engine{src: src, dir: dir, cmp: cfg.cmp, log: log}, nil
}

// Name returns the source name.
func (e *Engine) Name() string { return e.src.Name() }

// DataDir returns the source's cache directory.
func (e *Engine) DataDir() string { return e.dir }

// GetLatest returns the path and version of the latest data for this source,
// downloading it when no matching artifact is cached.
func (e *Engine) GetLatest(ctx context.Context, req Request) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}

	if req.FromLocal {
		return e.latestLocal()
	}

	ver, err := e.src.FetchLatestVersion(ctx)
	if err != nil {
		return Result{}, pkgerrors.Wrapf(err, "failed to determine latest %s version", e.src.Name())
	}
	res := e.artifactFor(ver)
	if !req.ForceRefresh && e.exists(res) {
		e.log.Debug("found existing file matching latest version",
			"source", e.src.Name(), "path", res.Path, "version", ver)
		return res, nil
	}
	if err := e.download(ctx, ver, res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// GetSpecific returns the path of the given version of data, downloading it
// when no matching artifact is cached. Only sources implementing
// SpecificVersionSource support this.
func (e *Engine) GetSpecific(ctx context.Context, ver string, req Request) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}
	svs, ok := e.src.(SpecificVersionSource)
	if !ok {
		return Result{}, pkgerrors.Wrapf(pkgerrors.ErrSpecificUnsupported, "source %s", e.src.Name())
	}

	res := e.artifactFor(ver)
	if req.FromLocal {
		if !e.exists(res) {
			return Result{}, pkgerrors.Wrapf(pkgerrors.ErrLocalNotFound, "no local %s file for version %s", e.src.Name(), ver)
		}
		return res, nil
	}

	if !req.ForceRefresh && e.exists(res) {
		return res, nil
	}
	if err := svs.FetchSpecific(ctx, ver, res.Path); err != nil {
		return Result{}, pkgerrors.Wrapf(err, "failed to fetch %s version %s", e.src.Name(), ver)
	}
	return res, nil
}

// Versions returns available versions, newest first. Only sources
// implementing SpecificVersionSource support this.
func (e *Engine) Versions(ctx context.Context) ([]string, error) {
	svs, ok := e.src.(SpecificVersionSource)
	if !ok {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrSpecificUnsupported, "source %s", e.src.Name())
	}
	return svs.Versions(ctx)
}

// Prune deletes all but the keep most recent cached files for this source
// and returns the removed paths. Recency follows the engine's comparator
// when one is configured, so dotted-numeric sources keep the right files.
func (e *Engine) Prune(keep int) ([]string, error) {
	if e.cmp != nil {
		return storage.PruneByVersion(e.dir, e.glob(), e.versionPattern(), e.cmp, keep)
	}
	return storage.Prune(e.dir, e.glob(), keep)
}

// latestLocal finds the most recent cached artifact without any network
// access.
func (e *Engine) latestLocal() (Result, error) {
	if mfs, ok := e.src.(MultiFileSource); ok {
		return e.latestLocalParts(mfs)
	}

	var path string
	var err error
	if e.cmp != nil {
		path, err = storage.LatestFileByVersion(e.dir, e.glob(), e.versionPattern(), e.cmp)
	} else {
		path, err = storage.LatestFile(e.dir, e.glob())
	}
	if err != nil {
		return Result{}, pkgerrors.Wrapf(err, "no local data for %s", e.src.Name())
	}
	ver, err := version.ParseFileVersion(filepath.Base(path), e.versionPattern())
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path, Version: ver}, nil
}

func (e *Engine) latestLocalParts(mfs MultiFileSource) (Result, error) {
	parts := make(map[string]string, len(mfs.Parts()))
	var first string
	for i, part := range mfs.Parts() {
		glob := fmt.Sprintf("%s_%s_*.%s", e.fileName(), part, e.src.FileType())
		path, err := storage.LatestFile(e.dir, glob)
		if err != nil {
			return Result{}, pkgerrors.Wrapf(err, "no local data for %s", e.src.Name())
		}
		parts[part] = path
		if i == 0 {
			first = path
		}
	}
	pattern := fmt.Sprintf(`^%s_\w+_(.+)\.%s$`, regexp.QuoteMeta(e.fileName()), regexp.QuoteMeta(e.src.FileType()))
	ver, err := version.ParseFileVersion(filepath.Base(first), pattern)
	if err != nil {
		return Result{}, err
	}
	return Result{Path: first, Parts: parts, Version: ver}, nil
}

// artifactFor computes the expected artifact location(s) for a version.
func (e *Engine) artifactFor(ver string) Result {
	if mfs, ok := e.src.(MultiFileSource); ok {
		parts := make(map[string]string, len(mfs.Parts()))
		var first string
		for i, part := range mfs.Parts() {
			path := filepath.Join(e.dir, fmt.Sprintf("%s_%s_%s.%s", e.fileName(), part, ver, e.src.FileType()))
			parts[part] = path
			if i == 0 {
				first = path
			}
		}
		return Result{Path: first, Parts: parts, Version: ver}
	}
	path := filepath.Join(e.dir, fmt.Sprintf("%s_%s.%s", e.fileName(), ver, e.src.FileType()))
	return Result{Path: path, Version: ver}
}

// exists reports whether the artifact is fully present on disk. For
// multi-file sources every part must exist; a partial set counts as absent
// and triggers a full re-download.
func (e *Engine) exists(res Result) bool {
	if res.Parts != nil {
		for _, p := range res.Parts {
			if !fileExists(p) {
				return false
			}
		}
		return true
	}
	return fileExists(res.Path)
}

func (e *Engine) download(ctx context.Context, ver string, res Result) error {
	e.log.Debug("downloading data", "source", e.src.Name(), "version", ver)
	if mfs, ok := e.src.(MultiFileSource); ok && res.Parts != nil {
		if err := mfs.DownloadAll(ctx, ver, res.Parts); err != nil {
			return pkgerrors.Wrapf(err, "failed to download %s version %s", e.src.Name(), ver)
		}
		return nil
	}
	if err := e.src.Download(ctx, ver, res.Path); err != nil {
		return pkgerrors.Wrapf(err, "failed to download %s version %s", e.src.Name(), ver)
	}
	return nil
}

func (e *Engine) fileName() string {
	if fn, ok := e.src.(fileNamer); ok {
		return fn.FileName()
	}
	return e.src.Name()
}

func (e *Engine) glob() string {
	return fmt.Sprintf("%s_*.%s", e.fileName(), e.src.FileType())
}

func (e *Engine) versionPattern() string {
	return fmt.Sprintf(`^%s_(.+)\.%s$`, regexp.QuoteMeta(e.fileName()), regexp.QuoteMeta(e.src.FileType()))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
