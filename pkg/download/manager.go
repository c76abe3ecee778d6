// Package download performs the byte transfer of remote data files into the
// local cache. Downloads are written to a temporary path and renamed (or
// extracted under their final names) only on full success.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	"github.com/GenomicMedLab/wags-tails/pkg/fsutil"
)

// ManagerImpl is a simple HTTP-based download manager. It is intentionally
// minimal: no retries, no mirror selection, no checksum verification.
type ManagerImpl struct {
	client    *http.Client
	userAgent string
}

// NewManager creates a new download manager with the given timeout and user
// agent.
func NewManager(timeout time.Duration, userAgent string) *ManagerImpl {
	if userAgent == "" {
		userAgent = "wags-tails/1.0"
	}
	return &ManagerImpl{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads a single item to item.Dest.
func (m *ManagerImpl) Fetch(ctx context.Context, item Item) error {
	if item.URL == "" {
		return fmt.Errorf("empty URL: %w", pkgerrors.ErrDownloadFailed)
	}
	if item.Dest == "" || !filepath.IsAbs(item.Dest) {
		return fmt.Errorf("destination must be absolute: %w: %s", pkgerrors.ErrInvalidPath, item.Dest)
	}
	if err := fsutil.EnsureFileDir(item.Dest); err != nil {
		return pkgerrors.Wrap(err, "could not create destination directory")
	}

	resp, err := m.doRequest(ctx, item)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	tmpPath, err := writeBodyToTemp(resp, item.Dest)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if item.Handler != nil {
		if err := item.Handler(ctx, tmpPath, item.Dest); err != nil {
			return pkgerrors.Wrapf(err, "post-processing failed for %s", item.URL)
		}
		return nil
	}
	return finalizeFile(tmpPath, item.Dest)
}

func (m *ManagerImpl) doRequest(ctx context.Context, item Item) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL, http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	for k, v := range item.Headers {
		req.Header.Set(k, v)
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrDownloadFailed, "request to %s failed: %v", item.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, pkgerrors.ErrDownloadFailed)
	}
	return resp, nil
}

func writeBodyToTemp(resp *http.Response, dest string) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), "dl-*.tmp")
	if err != nil {
		return "", pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}

func finalizeFile(tmpPath, dest string) error {
	if err := fsutil.Move(tmpPath, dest); err != nil {
		return pkgerrors.Wrap(err, "could not finalize file")
	}
	if err := os.Chmod(dest, fsutil.FileModeDefault); err != nil {
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	return nil
}
