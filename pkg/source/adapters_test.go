package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	dlmocks "github.com/GenomicMedLab/wags-tails/pkg/download/mocks"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
)

func TestChemblReleasePattern(t *testing.T) {
	readme := `# ChEMBL README

* Release: chembl_34
* Date:    2024-03-28
`
	m := chemblReleasePattern.FindStringSubmatch(readme)
	require.NotNil(t, m)
	assert.Equal(t, "34", m[1])

	assert.Nil(t, chemblReleasePattern.FindStringSubmatch("no release line here"))
}

func TestChemIDplusDatePattern(t *testing.T) {
	head := `<?xml version="1.0"?>
<file name="CurrentChemID" date="2024-03-07">`
	m := chemIDplusDatePattern.FindStringSubmatch(head)
	require.NotNil(t, m)
	assert.Equal(t, "2024-03-07", m[1])
}

func TestNcitVersionPattern(t *testing.T) {
	page := `<div class="banner">NCI Thesaurus Version: 24.01d (Release date: 2024-01-30)</div>`
	m := ncitVersionPattern.FindStringSubmatch(page)
	require.NotNil(t, m)
	assert.Equal(t, "24.01d", m[1])
}

func TestRxNormDownload_MissingCredential(t *testing.T) {
	t.Setenv(EnvUMLSAPIKey, "")

	src := &rxNormSource{}
	err := src.Download(context.Background(), "20240307", "/tmp/rxnorm_20240307.RRF")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrMissingCredential)
}

func TestRxNormDownload_BadVersion(t *testing.T) {
	t.Setenv(EnvUMLSAPIKey, "key")

	src := &rxNormSource{}
	err := src.Download(context.Background(), "March 2024", "/tmp/rxnorm.RRF")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrVersionParse)
}

func TestHemOncDownloadAll_MissingCredential(t *testing.T) {
	t.Setenv(EnvDataverseAPIKey, "")

	src := &hemOncSource{}
	err := src.DownloadAll(context.Background(), "20240307", map[string]string{
		"concepts": "/tmp/hemonc_concepts_20240307.csv",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrMissingCredential)
}

func TestHemOncParts(t *testing.T) {
	src := &hemOncSource{}
	assert.Equal(t, []string{"concepts", "rels", "synonyms"}, src.Parts())
}

func TestHpoFetchSpecific(t *testing.T) {
	ctrl := gomock.NewController(t)
	dl := dlmocks.NewMockManager(ctrl)
	src := &hpoSource{dl: dl}

	dest := "/tmp/hpo_20240306.obo"
	dl.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item download.Item) error {
			assert.Equal(t, "https://github.com/obophenotype/human-phenotype-ontology/releases/download/2024-03-06/hp-full.obo", item.URL)
			assert.Equal(t, dest, item.Dest)
			return nil
		})

	require.NoError(t, src.FetchSpecific(context.Background(), "20240306", dest))
}

func TestHpoFetchSpecific_BadVersion(t *testing.T) {
	src := &hpoSource{}
	err := src.FetchSpecific(context.Background(), "2024-03-06", "/tmp/hpo.obo")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrVersionParse)
}

func TestGithubReleaseAssetURL(t *testing.T) {
	release := githubRelease{
		TagName: "v2024-03-04",
		Assets: []githubAsset{
			{Name: "mondo.obo", BrowserDownloadURL: "https://example.com/mondo.obo"},
			{Name: "mondo.owl", BrowserDownloadURL: "https://example.com/mondo.owl"},
		},
	}

	url, err := release.assetURL("mondo.owl")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/mondo.owl", url)

	_, err = release.assetURL("mondo.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrRemoteData)
}
