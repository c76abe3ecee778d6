package download

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"

	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	"github.com/GenomicMedLab/wags-tails/pkg/fsutil"
)

// ExtractMatch returns a Handler that extracts the first archive member
// matching pattern to the destination path. A member matches when its base
// name matches the glob pattern, or when its full path within the archive
// ends with the pattern. Zip and tar.gz payloads are detected automatically.
func ExtractMatch(pattern string) Handler {
	return func(ctx context.Context, dlPath, dest string) error {
		fsys, err := openArchive(ctx, dlPath)
		if err != nil {
			return err
		}
		defer closeArchive(fsys)

		found := false
		err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil || found || d.IsDir() {
				return err
			}
			if !memberMatches(p, pattern) {
				return nil
			}
			found = true
			if err := extractMember(fsys, p, dest); err != nil {
				return err
			}
			return fs.SkipAll
		})
		if err != nil {
			return err
		}
		if !found {
			return pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "no file matching %q in downloaded archive", pattern)
		}
		return nil
	}
}

// ExtractLargest returns a Handler that extracts the largest archive member
// to the destination path. Useful for vendors that pack a single data file
// alongside small metadata files.
func ExtractLargest() Handler {
	return func(ctx context.Context, dlPath, dest string) error {
		fsys, err := openArchive(ctx, dlPath)
		if err != nil {
			return err
		}
		defer closeArchive(fsys)

		var largest string
		var largestSize int64 = -1
		err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			if info.Size() > largestSize {
				largest, largestSize = p, info.Size()
			}
			return nil
		})
		if err != nil {
			return err
		}
		if largest == "" {
			return pkgerrors.Wrap(pkgerrors.ErrRemoteData, "downloaded archive contains no files")
		}
		return extractMember(fsys, largest, dest)
	}
}

// ExtractParts extracts archive members to multiple destinations: any member
// whose path contains a key of dests is written to the corresponding path.
// Every destination must be produced or an error is returned. The dest
// argument of the returned Handler is ignored; multi-file destinations are
// fixed when the handler is built.
func ExtractParts(dests map[string]string) Handler {
	return func(ctx context.Context, dlPath, _ string) error {
		fsys, err := openArchive(ctx, dlPath)
		if err != nil {
			return err
		}
		defer closeArchive(fsys)

		written := make(map[string]bool, len(dests))
		err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			for part, partDest := range dests {
				if written[part] || !strings.Contains(p, part) {
					continue
				}
				if err := extractMember(fsys, p, partDest); err != nil {
					return err
				}
				written[part] = true
			}
			return nil
		})
		if err != nil {
			return err
		}
		for part := range dests {
			if !written[part] {
				return pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "no file for part %q in downloaded archive", part)
			}
		}
		return nil
	}
}

func memberMatches(memberPath, pattern string) bool {
	if ok, err := path.Match(pattern, path.Base(memberPath)); err == nil && ok {
		return true
	}
	return strings.HasSuffix(memberPath, pattern)
}

func openArchive(ctx context.Context, archivePath string) (fs.FS, error) {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to open downloaded archive")
	}
	return fsys, nil
}

func closeArchive(fsys fs.FS) {
	if closer, ok := fsys.(io.Closer); ok {
		_ = closer.Close()
	}
}

// extractMember copies one archive member to dest, going through a temporary
// file so a failed extraction never leaves a partial artifact behind.
func extractMember(fsys fs.FS, memberPath, dest string) error {
	src, err := fsys.Open(memberPath)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open archive member %s", memberPath)
	}
	defer func() { _ = src.Close() }()

	if err := fsutil.EnsureFileDir(dest); err != nil {
		return pkgerrors.Wrap(err, "could not create destination directory")
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), "extract-*.tmp")
	if err != nil {
		return pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, src); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrapf(err, "failed to extract %s", memberPath)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not close temp file")
	}
	return finalizeFile(tmpPath, dest)
}
