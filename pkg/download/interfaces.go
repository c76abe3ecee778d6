//go:generate mockgen -destination=mocks/download.go -package=mocks . Manager

package download

import "context"

// Manager defines the interface for downloading remote data files. It
// replaces ad-hoc HTTP downloading with a single, testable API that
// guarantees no partially written file ever appears at the final path.
type Manager interface {
	// Fetch downloads a single item and leaves a fully-formed artifact at
	// item.Dest, or returns an error and leaves nothing there.
	Fetch(ctx context.Context, item Item) error
}

// Item represents one remote file to download.
type Item struct {
	URL     string            // source URL to download
	Headers map[string]string // optional extra request headers
	Dest    string            // absolute final artifact path
	Handler Handler           // optional post-processing; if nil the raw body is moved into place
}

// Handler post-processes a downloaded payload, e.g. by extracting a member
// from an archive. It receives the temporary download path and the final
// destination, and must leave a complete artifact at the destination or
// return an error. The temporary file is cleaned up by the caller.
type Handler func(ctx context.Context, dlPath, dest string) error
