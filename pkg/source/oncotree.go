package source

import (
	"context"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

const (
	oncoTreeVersionsURL = "https://oncotree.info/api/versions"
	oncoTreeDataURL     = "https://oncotree.info/api/tumorTypes/tree?version=oncotree_latest_stable"

	oncoTreeStableID = "oncotree_latest_stable"
)

// oncoTreeSource provides access to the OncoTree cancer classification.
type oncoTreeSource struct {
	client *wagshttp.Client
	dl     download.Manager
}

// NewOncoTree creates the retrieval engine for OncoTree.
func NewOncoTree(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &oncoTreeSource{client: opts.Client, dl: opts.Downloader}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *oncoTreeSource) Name() string     { return "oncotree" }
func (s *oncoTreeSource) FileType() string { return "json" }

func (s *oncoTreeSource) FetchLatestVersion(ctx context.Context) (string, error) {
	var releases []struct {
		APIIdentifier string `json:"api_identifier"`
		ReleaseDate   string `json:"release_date"`
	}
	if err := s.client.GetJSON(ctx, oncoTreeVersionsURL, nil, &releases); err != nil {
		return "", err
	}
	for _, r := range releases {
		if r.APIIdentifier == oncoTreeStableID {
			return version.ParseDate(r.ReleaseDate, "2006-01-02")
		}
	}
	return "", pkgerrors.Wrap(pkgerrors.ErrRemoteData, "unable to locate latest stable OncoTree version")
}

func (s *oncoTreeSource) Download(ctx context.Context, _ string, dest string) error {
	return s.dl.Fetch(ctx, download.Item{URL: oncoTreeDataURL, Dest: dest})
}
