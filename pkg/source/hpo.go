package source

import (
	"context"
	"fmt"
	"time"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

const (
	hpoRepo      = "obophenotype/human-phenotype-ontology"
	hpoAssetName = "hp-full.obo"

	// hpoTagLayout is the repository's release tag format, e.g. 2024-03-06.
	hpoTagLayout = "2006-01-02"
)

// hpoSource provides access to the Human Phenotype Ontology, published as a
// GitHub release asset. Releases are tagged by date and stay addressable, so
// specific-version retrieval is supported.
type hpoSource struct {
	releases githubReleases
	dl       download.Manager
}

// NewHpo creates the retrieval engine for the Human Phenotype Ontology.
func NewHpo(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &hpoSource{
		releases: githubReleases{client: opts.Client, repo: hpoRepo},
		dl:       opts.Downloader,
	}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *hpoSource) Name() string     { return "hpo" }
func (s *hpoSource) FileType() string { return "obo" }

func (s *hpoSource) FetchLatestVersion(ctx context.Context) (string, error) {
	release, err := s.releases.latest(ctx)
	if err != nil {
		return "", err
	}
	// Confirm the asset is actually published under this release.
	if _, err := release.assetURL(hpoAssetName); err != nil {
		return "", err
	}
	v, err := version.ParseDate(release.TagName, hpoTagLayout)
	if err != nil {
		return "", pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "unexpected release tag %q for %s", release.TagName, hpoRepo)
	}
	return v, nil
}

func (s *hpoSource) Versions(ctx context.Context) ([]string, error) {
	releases, err := s.releases.list(ctx)
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0, len(releases))
	for _, r := range releases {
		v, err := version.ParseDate(r.TagName, hpoTagLayout)
		if err != nil {
			return nil, pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "unexpected release tag %q for %s", r.TagName, hpoRepo)
		}
		versions = append(versions, v)
	}
	return versions, nil
}

func (s *hpoSource) Download(ctx context.Context, version, dest string) error {
	return s.FetchSpecific(ctx, version, dest)
}

func (s *hpoSource) FetchSpecific(ctx context.Context, ver, dest string) error {
	t, err := time.Parse(version.DateLayout, ver)
	if err != nil {
		return pkgerrors.Wrapf(pkgerrors.ErrVersionParse, "invalid version value %q", ver)
	}
	url := fmt.Sprintf("https://github.com/%s/releases/download/%s/%s", hpoRepo, t.Format(hpoTagLayout), hpoAssetName)
	return s.dl.Fetch(ctx, download.Item{URL: url, Dest: dest})
}

var _ SpecificVersionSource = (*hpoSource)(nil)
