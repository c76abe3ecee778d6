package source

import (
	"context"
	"fmt"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
)

const (
	mondoRepo      = "monarch-initiative/mondo"
	mondoAssetName = "mondo.owl"
)

// mondoSource provides access to the Mondo disease ontology, published as a
// GitHub release asset. Versions are the vendor-native release tags.
// Historical releases stay addressable, so specific-version retrieval is
// supported.
type mondoSource struct {
	releases githubReleases
	dl       download.Manager
}

// NewMondo creates the retrieval engine for Mondo.
func NewMondo(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &mondoSource{
		releases: githubReleases{client: opts.Client, repo: mondoRepo},
		dl:       opts.Downloader,
	}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *mondoSource) Name() string     { return "mondo" }
func (s *mondoSource) FileType() string { return "owl" }

func (s *mondoSource) FetchLatestVersion(ctx context.Context) (string, error) {
	release, err := s.releases.latest(ctx)
	if err != nil {
		return "", err
	}
	// Confirm the asset is actually published under this release.
	if _, err := release.assetURL(mondoAssetName); err != nil {
		return "", err
	}
	return release.TagName, nil
}

func (s *mondoSource) Download(ctx context.Context, version, dest string) error {
	return s.FetchSpecific(ctx, version, dest)
}

func (s *mondoSource) Versions(ctx context.Context) ([]string, error) {
	releases, err := s.releases.list(ctx)
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0, len(releases))
	for _, r := range releases {
		versions = append(versions, r.TagName)
	}
	return versions, nil
}

func (s *mondoSource) FetchSpecific(ctx context.Context, version, dest string) error {
	url := fmt.Sprintf("https://github.com/%s/releases/download/%s/%s", mondoRepo, version, mondoAssetName)
	return s.dl.Fetch(ctx, download.Item{URL: url, Dest: dest})
}

var _ SpecificVersionSource = (*mondoSource)(nil)
