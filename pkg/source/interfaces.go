//go:generate mockgen -destination=mocks/source.go -package=mocks . DataSource,SpecificVersionSource,MultiFileSource

package source

import "context"

// DataSource is the contract every dataset adapter implements. Adapters
// supply version discovery and download execution; the Engine decides when
// either is invoked.
type DataSource interface {
	// Name returns the source name used for cache subdirectories and
	// filenames.
	Name() string

	// FileType returns the artifact file extension, without leading dot.
	FileType() string

	// FetchLatestVersion returns the newest version available remotely.
	// Returns an error wrapping errors.ErrRemoteData when the remote
	// response cannot be parsed into a valid version.
	FetchLatestVersion(ctx context.Context) (string, error)

	// Download acquires the given version and leaves a fully-formed
	// artifact at dest, or returns an error and leaves nothing there.
	Download(ctx context.Context, version, dest string) error
}

// SpecificVersionSource is an optional capability for sources with
// addressable historical releases (e.g. GitHub-release-backed sources).
type SpecificVersionSource interface {
	DataSource

	// Versions returns available version values, newest first.
	Versions(ctx context.Context) ([]string, error)

	// FetchSpecific downloads the given historical version to dest.
	FetchSpecific(ctx context.Context, version, dest string) error
}

// MultiFileSource is an optional capability for sources that distribute one
// release across a fixed set of named files.
type MultiFileSource interface {
	DataSource

	// Parts returns the logical part names, in stable order.
	Parts() []string

	// DownloadAll acquires every part of the given version. dests maps part
	// names to final artifact paths. All parts are written or none are
	// usable; callers treat a partial set as a cache miss.
	DownloadAll(ctx context.Context, version string, dests map[string]string) error
}

// fileNamer lets a source override the filename base, which otherwise
// defaults to the source name.
type fileNamer interface {
	FileName() string
}
