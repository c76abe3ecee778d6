package source

import (
	"context"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

const (
	drugsAtFdaExportURL   = "https://api.fda.gov/download.json"
	drugsAtFdaDownloadURL = "https://download.open.fda.gov/drug/drugsfda/drug-drugsfda-0001-of-0001.json.zip"
)

// drugsAtFdaSource provides access to the Drugs@FDA database via the openFDA
// bulk export.
type drugsAtFdaSource struct {
	client *wagshttp.Client
	dl     download.Manager
}

// NewDrugsAtFDA creates the retrieval engine for Drugs@FDA.
func NewDrugsAtFDA(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &drugsAtFdaSource{client: opts.Client, dl: opts.Downloader}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *drugsAtFdaSource) Name() string     { return "drugsatfda" }
func (s *drugsAtFdaSource) FileType() string { return "json" }

func (s *drugsAtFdaSource) FetchLatestVersion(ctx context.Context) (string, error) {
	var payload struct {
		Results struct {
			Drug struct {
				DrugsFda struct {
					ExportDate string `json:"export_date"`
				} `json:"drugsfda"`
			} `json:"drug"`
		} `json:"results"`
	}
	if err := s.client.GetJSON(ctx, drugsAtFdaExportURL, nil, &payload); err != nil {
		return "", err
	}
	date := payload.Results.Drug.DrugsFda.ExportDate
	if date == "" {
		return "", pkgerrors.Wrap(pkgerrors.ErrRemoteData, "unable to parse latest Drugs@FDA export date from downloads endpoint")
	}
	return version.ParseDate(date, "2006-01-02")
}

func (s *drugsAtFdaSource) Download(ctx context.Context, _ string, dest string) error {
	return s.dl.Fetch(ctx, download.Item{
		URL:     drugsAtFdaDownloadURL,
		Dest:    dest,
		Handler: download.ExtractLargest(),
	})
}
