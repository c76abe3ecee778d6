package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
)

func TestNewCustom(t *testing.T) {
	src := CustomSource{
		SourceName: "mylab",
		FileSuffix: "tsv",
		LatestVersionFunc: func(context.Context) (string, error) {
			return "20240307", nil
		},
		DownloadFunc: func(_ context.Context, _, dest string) error {
			return os.WriteFile(dest, []byte("custom data"), 0o644)
		},
	}

	engine, err := NewCustom(src, Options{DataDir: t.TempDir()})
	require.NoError(t, err)

	res, err := engine.GetLatest(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(engine.DataDir(), "mylab_20240307.tsv"), res.Path)
	assert.FileExists(t, res.Path)
}

func TestNewCustom_FileNameBase(t *testing.T) {
	src := CustomSource{
		SourceName:   "mylab",
		FileSuffix:   "tsv",
		FileNameBase: "mylab_supplement",
		LatestVersionFunc: func(context.Context) (string, error) {
			return "20240307", nil
		},
		DownloadFunc: func(_ context.Context, _, dest string) error {
			return os.WriteFile(dest, []byte("x"), 0o644)
		},
	}

	engine, err := NewCustom(src, Options{DataDir: t.TempDir()})
	require.NoError(t, err)

	res, err := engine.GetLatest(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "mylab_supplement_20240307.tsv", filepath.Base(res.Path))
}

func TestNewCustom_Validation(t *testing.T) {
	versionFn := func(context.Context) (string, error) { return "1", nil }
	downloadFn := func(context.Context, string, string) error { return nil }

	tests := []struct {
		name string
		src  CustomSource
	}{
		{
			name: "missing name",
			src:  CustomSource{FileSuffix: "tsv", LatestVersionFunc: versionFn, DownloadFunc: downloadFn},
		},
		{
			name: "missing suffix",
			src:  CustomSource{SourceName: "mylab", LatestVersionFunc: versionFn, DownloadFunc: downloadFn},
		},
		{
			name: "missing version callback",
			src:  CustomSource{SourceName: "mylab", FileSuffix: "tsv", DownloadFunc: downloadFn},
		},
		{
			name: "missing download callback",
			src:  CustomSource{SourceName: "mylab", FileSuffix: "tsv", LatestVersionFunc: versionFn},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustom(tt.src, Options{DataDir: t.TempDir()})
			require.Error(t, err)
			assert.ErrorIs(t, err, pkgerrors.ErrInvalidConfig)
		})
	}
}
