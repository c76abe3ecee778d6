// Package storage resolves where wags-tails keeps its data and discovers
// previously cached files. It never mutates cached artifacts; its only side
// effect is creating the data directories it resolves.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/GenomicMedLab/wags-tails/pkg/errors"
	"github.com/GenomicMedLab/wags-tails/pkg/fsutil"
)

const (
	// EnvDataDir names an explicit root directory for all wags-tails data.
	EnvDataDir = "WAGS_TAILS_DIR"

	// EnvXDGDataHome is the XDG base-directory data home variable.
	EnvXDGDataHome = "XDG_DATA_HOME"

	// EnvXDGDataDirs is the XDG colon-separated list of candidate data
	// directories.
	EnvXDGDataDirs = "XDG_DATA_DIRS"

	// appDirName is the subdirectory name used under XDG-style roots.
	appDirName = "wags_tails"
)

// ResolveDataDir returns the base wags-tails data directory, creating it if
// necessary. Resolution order, first match wins:
//
//  1. the override argument, if non-empty;
//  2. $WAGS_TAILS_DIR;
//  3. $XDG_DATA_HOME/wags_tails;
//  4. the first entry of $XDG_DATA_DIRS (colon-separated) whose
//     wags_tails candidate is not an existing plain file;
//  5. ~/.local/share/wags_tails.
func ResolveDataDir(override string) (string, error) {
	dir, err := pickDataDir(override)
	if err != nil {
		return "", err
	}
	if err := fsutil.EnsureDir(dir); err != nil {
		return "", errors.Wrapf(err, "failed to create data directory %s", dir)
	}
	return dir, nil
}

func pickDataDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}
	if home := os.Getenv(EnvXDGDataHome); home != "" {
		return filepath.Join(home, appDirName), nil
	}
	if dirs := os.Getenv(EnvXDGDataDirs); dirs != "" {
		for _, d := range strings.Split(dirs, ":") {
			if d == "" {
				continue
			}
			candidate := filepath.Join(d, appDirName)
			// Skip entries that collide with an existing plain file.
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				continue
			}
			return candidate, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine home directory")
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}
