package download

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenomicMedLab/wags-tails/pkg/errors"
)

// writeZip builds a zip archive on disk from member name to contents.
func writeZip(t *testing.T, members map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, contents := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(contents))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtractMatch(t *testing.T) {
	tests := []struct {
		name        string
		members     map[string]string
		pattern     string
		expected    string
		expectError bool
	}{
		{
			name: "glob on base name",
			members: map[string]string{
				"README.txt":             "ignore",
				"chembl_34/chembl_34.db": "sqlite bytes",
			},
			pattern:  "chembl_*.db",
			expected: "sqlite bytes",
		},
		{
			name: "path suffix match",
			members: map[string]string{
				"src/ontology/doid.owl": "owl bytes",
				"src/ontology/doid.obo": "obo bytes",
			},
			pattern:  "src/ontology/doid.owl",
			expected: "owl bytes",
		},
		{
			name: "no member matches",
			members: map[string]string{
				"README.txt": "ignore",
			},
			pattern:     "chembl_*.db",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archive := writeZip(t, tt.members)
			dest := filepath.Join(t.TempDir(), "out.bin")

			err := ExtractMatch(tt.pattern)(context.Background(), archive, dest)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrRemoteData)
				assert.NoFileExists(t, dest)
				return
			}
			require.NoError(t, err)
			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestExtractLargest(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"metadata.txt":  "small",
		"data/full.csv": "this is by far the largest member of the archive",
		"notes.md":      "tiny",
	})
	dest := filepath.Join(t.TempDir(), "drugbank_5.1.10.csv")

	require.NoError(t, ExtractLargest()(context.Background(), archive, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "this is by far the largest member of the archive", string(data))
}

func TestExtractParts(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"hemonc_concepts.csv": "concepts data",
		"hemonc_rels.csv":     "rels data",
		"hemonc_synonyms.csv": "synonyms data",
	})
	dir := t.TempDir()
	dests := map[string]string{
		"concepts": filepath.Join(dir, "hemonc_concepts_20240307.csv"),
		"rels":     filepath.Join(dir, "hemonc_rels_20240307.csv"),
		"synonyms": filepath.Join(dir, "hemonc_synonyms_20240307.csv"),
	}

	require.NoError(t, ExtractParts(dests)(context.Background(), archive, ""))

	for part, dest := range dests {
		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, part+" data", string(data))
	}
}

func TestExtractParts_MissingPart(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"hemonc_concepts.csv": "concepts data",
	})
	dir := t.TempDir()
	dests := map[string]string{
		"concepts": filepath.Join(dir, "hemonc_concepts_20240307.csv"),
		"rels":     filepath.Join(dir, "hemonc_rels_20240307.csv"),
	}

	err := ExtractParts(dests)(context.Background(), archive, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRemoteData)
}
