package source

import (
	"context"
	"time"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

const (
	doRepo = "DiseaseOntology/HumanDiseaseOntology"

	// doTagLayout is the repository's release tag format, e.g. v2024-01-31.
	doTagLayout = "v2006-01-02"

	doOwlPath = "src/ontology/doid.owl"
)

// doSource provides access to the Human Disease Ontology. Releases are
// GitHub repository checkpoints tagged by date; the OWL file is pulled out
// of the release tarball.
type doSource struct {
	releases githubReleases
	dl       download.Manager
}

// NewDO creates the retrieval engine for the Human Disease Ontology.
func NewDO(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &doSource{
		releases: githubReleases{client: opts.Client, repo: doRepo},
		dl:       opts.Downloader,
	}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *doSource) Name() string     { return "do" }
func (s *doSource) FileType() string { return "owl" }

func (s *doSource) FetchLatestVersion(ctx context.Context) (string, error) {
	versions, err := s.Versions(ctx)
	if err != nil {
		return "", err
	}
	return versions[0], nil
}

func (s *doSource) Versions(ctx context.Context) ([]string, error) {
	releases, err := s.releases.list(ctx)
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0, len(releases))
	for _, r := range releases {
		v, err := version.ParseDate(r.TagName, doTagLayout)
		if err != nil {
			return nil, pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "unexpected release tag %q for %s", r.TagName, doRepo)
		}
		versions = append(versions, v)
	}
	return versions, nil
}

func (s *doSource) Download(ctx context.Context, version, dest string) error {
	return s.FetchSpecific(ctx, version, dest)
}

func (s *doSource) FetchSpecific(ctx context.Context, ver, dest string) error {
	t, err := time.Parse(version.DateLayout, ver)
	if err != nil {
		return pkgerrors.Wrapf(pkgerrors.ErrVersionParse, "invalid version value %q", ver)
	}
	release, err := s.releases.byTag(ctx, t.Format(doTagLayout))
	if err != nil {
		return err
	}
	return s.dl.Fetch(ctx, download.Item{
		URL:     release.TarballURL,
		Dest:    dest,
		Handler: download.ExtractMatch(doOwlPath),
	})
}

var _ SpecificVersionSource = (*doSource)(nil)
