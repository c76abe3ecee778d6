package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

const (
	drugBankReleasesURL = "https://go.drugbank.com/releases.json"
	drugBankBaseURL     = "https://go.drugbank.com/releases"
)

// drugBankSource provides access to the open DrugBank vocabulary. DrugBank
// versions are dotted numeric ("5.1.12"), which do not sort correctly as
// plain strings, so the engine is configured with the dotted-numeric
// comparator.
type drugBankSource struct {
	client *wagshttp.Client
	dl     download.Manager
}

// NewDrugBank creates the retrieval engine for DrugBank.
func NewDrugBank(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &drugBankSource{client: opts.Client, dl: opts.Downloader}
	return NewEngine(src, opts.engineOptions(WithComparator(version.DottedNumeric))...)
}

func (s *drugBankSource) Name() string     { return "drugbank" }
func (s *drugBankSource) FileType() string { return "csv" }

func (s *drugBankSource) FetchLatestVersion(ctx context.Context) (string, error) {
	var releases []struct {
		Version string `json:"version"`
		URL     string `json:"url"`
	}
	if err := s.client.GetJSON(ctx, drugBankReleasesURL, nil, &releases); err != nil {
		return "", err
	}
	if len(releases) == 0 || releases[0].Version == "" {
		return "", pkgerrors.Wrap(pkgerrors.ErrRemoteData, "unable to parse latest DrugBank version number from releases API endpoint")
	}
	return releases[0].Version, nil
}

func (s *drugBankSource) Download(ctx context.Context, version, dest string) error {
	// Release URLs encode the version with dashes, e.g. releases/5-1-12.
	slug := strings.ReplaceAll(version, ".", "-")
	return s.dl.Fetch(ctx, download.Item{
		URL:     fmt.Sprintf("%s/%s/downloads/all-drugbank-vocabulary", drugBankBaseURL, slug),
		Dest:    dest,
		Handler: download.ExtractLargest(),
	})
}
