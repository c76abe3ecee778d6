package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenomicMedLab/wags-tails/pkg/errors"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

func TestPrune(t *testing.T) {
	tests := []struct {
		name            string
		files           []string
		keep            int
		expectedRemoved []string
		expectedKept    []string
	}{
		{
			name:            "keep newest",
			files:           []string{"oncotree_20240101.json", "oncotree_20240201.json", "oncotree_20240301.json"},
			keep:            1,
			expectedRemoved: []string{"oncotree_20240101.json", "oncotree_20240201.json"},
			expectedKept:    []string{"oncotree_20240301.json"},
		},
		{
			name:            "keep two",
			files:           []string{"oncotree_20240101.json", "oncotree_20240201.json", "oncotree_20240301.json"},
			keep:            2,
			expectedRemoved: []string{"oncotree_20240101.json"},
			expectedKept:    []string{"oncotree_20240201.json", "oncotree_20240301.json"},
		},
		{
			name:         "nothing to remove",
			files:        []string{"oncotree_20240301.json"},
			keep:         1,
			expectedKept: []string{"oncotree_20240301.json"},
		},
		{
			name:            "keep zero removes everything",
			files:           []string{"oncotree_20240201.json", "oncotree_20240301.json"},
			keep:            0,
			expectedRemoved: []string{"oncotree_20240201.json", "oncotree_20240301.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files...)

			removed, err := Prune(dir, "oncotree_*.json", tt.keep)
			require.NoError(t, err)

			var removedNames []string
			for _, r := range removed {
				removedNames = append(removedNames, filepath.Base(r))
			}
			assert.Equal(t, tt.expectedRemoved, removedNames)

			for _, kept := range tt.expectedKept {
				assert.FileExists(t, filepath.Join(dir, kept))
			}
			for _, gone := range tt.expectedRemoved {
				assert.NoFileExists(t, filepath.Join(dir, gone))
			}
		})
	}
}

func TestPrune_NegativeKeep(t *testing.T) {
	_, err := Prune(t.TempDir(), "oncotree_*.json", -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidPath)
}

func TestPruneByVersion(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "drugbank_5.1.9.csv", "drugbank_5.1.10.csv", "drugbank_5.1.2.csv")

	// Filename order would sort 5.1.10 before 5.1.9; the comparator must
	// keep the numerically newest file.
	removed, err := PruneByVersion(dir, "drugbank_*.csv", `^drugbank_(.+)\.csv$`, version.DottedNumeric, 1)
	require.NoError(t, err)

	var removedNames []string
	for _, r := range removed {
		removedNames = append(removedNames, filepath.Base(r))
	}
	assert.Equal(t, []string{"drugbank_5.1.2.csv", "drugbank_5.1.9.csv"}, removedNames)
	assert.FileExists(t, filepath.Join(dir, "drugbank_5.1.10.csv"))
}

func TestPruneByVersion_UnparsableRemovedFirst(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "drugbank_5.1.9.csv", "drugbank_backup.csv")

	removed, err := PruneByVersion(dir, "drugbank_*.csv", `^drugbank_(\d.+)\.csv$`, version.DottedNumeric, 1)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, "drugbank_backup.csv", filepath.Base(removed[0]))
	assert.FileExists(t, filepath.Join(dir, "drugbank_5.1.9.csv"))
}

func TestPruneByVersion_NegativeKeep(t *testing.T) {
	_, err := PruneByVersion(t.TempDir(), "drugbank_*.csv", `^drugbank_(.+)\.csv$`, version.DottedNumeric, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidPath)
}

func TestPrune_IgnoresOtherSources(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "oncotree_20240101.json", "oncotree_20240301.json", "mondo_20230101.owl")

	removed, err := Prune(dir, "oncotree_*.json", 1)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.FileExists(t, filepath.Join(dir, "mondo_20230101.owl"))
}
