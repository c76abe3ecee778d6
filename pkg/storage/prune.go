package storage

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/GenomicMedLab/wags-tails/pkg/errors"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

// Prune deletes all but the keep most recent files in dir matching the glob
// pattern and returns the paths that were removed. Recency follows the
// lexicographic filename ordering used by LatestFile.
func Prune(dir, glob string, keep int) ([]string, error) {
	if keep < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidPath, "keep count must be nonnegative, got %d", keep)
	}
	files, err := MatchingFiles(dir, glob)
	if err != nil {
		return nil, err
	}
	if len(files) <= keep {
		return nil, nil
	}

	return remove(files[:len(files)-keep])
}

// PruneByVersion deletes all but the keep most recent files in dir matching
// the glob pattern, ordering candidates by the version value extracted from
// each filename under the given comparator. Files whose names do not yield a
// version are treated as oldest and removed first.
func PruneByVersion(dir, glob, versionPattern string, cmp version.Comparator, keep int) ([]string, error) {
	if keep < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidPath, "keep count must be nonnegative, got %d", keep)
	}
	files, err := MatchingFiles(dir, glob)
	if err != nil {
		return nil, err
	}
	if len(files) <= keep {
		return nil, nil
	}

	versions := make(map[string]string, len(files))
	for _, f := range files {
		v, err := version.ParseFileVersion(filepath.Base(f), versionPattern)
		if err != nil {
			continue
		}
		versions[f] = v
	}
	sort.SliceStable(files, func(i, j int) bool {
		vi, iok := versions[files[i]]
		vj, jok := versions[files[j]]
		if !iok || !jok {
			return !iok && jok
		}
		return cmp(vi, vj) < 0
	})
	return remove(files[:len(files)-keep])
}

func remove(doomed []string) ([]string, error) {
	removed := make([]string, 0, len(doomed))
	for _, f := range doomed {
		if err := os.Remove(f); err != nil {
			return removed, errors.Wrapf(err, "failed to delete %s", f)
		}
		removed = append(removed, f)
	}
	return removed, nil
}
