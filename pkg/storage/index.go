package storage

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/GenomicMedLab/wags-tails/pkg/errors"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

// MatchingFiles lists files in dir matching the glob pattern, sorted by
// filename (oldest to newest under the lexicographic filename contract).
func MatchingFiles(dir, glob string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid file pattern %q", glob)
	}
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// LatestFile returns the most recent locally-available file matching the
// glob pattern, i.e. the lexicographically last match. This is correct only
// for sources whose version values sort lexicographically in release order;
// sources with dotted numeric versions must use LatestFileByVersion.
func LatestFile(dir, glob string) (string, error) {
	files, err := MatchingFiles(dir, glob)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", errors.Wrapf(errors.ErrLocalNotFound, "no file in %s matching pattern %q", dir, glob)
	}
	return files[len(files)-1], nil
}

// LatestFileByVersion returns the matching file whose extracted version
// value is the maximum under the given comparator. versionPattern is applied
// to the base filename and must contain one capture group.
func LatestFileByVersion(dir, glob, versionPattern string, cmp version.Comparator) (string, error) {
	files, err := MatchingFiles(dir, glob)
	if err != nil {
		return "", err
	}

	var latest, latestVersion string
	for _, f := range files {
		v, err := version.ParseFileVersion(filepath.Base(f), versionPattern)
		if err != nil {
			continue
		}
		if latest == "" || cmp(v, latestVersion) > 0 {
			latest, latestVersion = f, v
		}
	}
	if latest == "" {
		return "", errors.Wrapf(errors.ErrLocalNotFound, "no file in %s matching pattern %q", dir, glob)
	}
	return latest, nil
}
