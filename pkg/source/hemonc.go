package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

const (
	hemOncExportURL  = "https://dataverse.harvard.edu/api/datasets/export?persistentId=doi:10.7910/DVN/9CY9C6&exporter=dataverse_json"
	hemOncDatasetURL = "https://dataverse.harvard.edu/api/access/dataset/:persistentId/?persistentId=doi:10.7910/DVN/9CY9C6"

	// EnvDataverseAPIKey names the Harvard Dataverse API key required to
	// download HemOnc data. See
	// https://guides.dataverse.org/en/latest/user/account.html
	EnvDataverseAPIKey = "HARVARD_DATAVERSE_API_KEY"
)

// hemOncParts are the logical files HemOnc distributes per release.
var hemOncParts = []string{"concepts", "rels", "synonyms"}

// hemOncSource provides access to the HemOnc oncology reference. One release
// spans three CSV files packed in a single zip, so this source carries the
// multi-file capability: the whole set is fetched together and a partial set
// on disk counts as a cache miss.
type hemOncSource struct {
	client *wagshttp.Client
	dl     download.Manager
}

// NewHemOnc creates the retrieval engine for HemOnc.
func NewHemOnc(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &hemOncSource{client: opts.Client, dl: opts.Downloader}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *hemOncSource) Name() string     { return "hemonc" }
func (s *hemOncSource) FileType() string { return "csv" }
func (s *hemOncSource) Parts() []string  { return hemOncParts }

func (s *hemOncSource) FetchLatestVersion(ctx context.Context) (string, error) {
	var payload struct {
		DatasetVersion struct {
			CreateTime string `json:"createTime"`
		} `json:"datasetVersion"`
	}
	if err := s.client.GetJSON(ctx, hemOncExportURL, nil, &payload); err != nil {
		return "", err
	}
	date, _, ok := strings.Cut(payload.DatasetVersion.CreateTime, "T")
	if !ok {
		return "", pkgerrors.Wrap(pkgerrors.ErrRemoteData, "unable to parse latest HemOnc version number from release API")
	}
	return version.ParseDate(date, "2006-01-02")
}

// Download fetches a single release into the directory containing dest,
// deriving the sibling part paths from the requested version.
func (s *hemOncSource) Download(ctx context.Context, ver, dest string) error {
	dir := filepath.Dir(dest)
	dests := make(map[string]string, len(hemOncParts))
	for _, part := range hemOncParts {
		dests[part] = filepath.Join(dir, "hemonc_"+part+"_"+ver+".csv")
	}
	return s.DownloadAll(ctx, ver, dests)
}

func (s *hemOncSource) DownloadAll(ctx context.Context, _ string, dests map[string]string) error {
	apiKey := os.Getenv(EnvDataverseAPIKey)
	if apiKey == "" {
		return pkgerrors.Wrapf(pkgerrors.ErrMissingCredential, "%s", EnvDataverseAPIKey)
	}

	var anyDest string
	for _, d := range dests {
		anyDest = d
		break
	}
	return s.dl.Fetch(ctx, download.Item{
		URL:     hemOncDatasetURL,
		Headers: map[string]string{"X-Dataverse-key": apiKey},
		Dest:    anyDest,
		Handler: download.ExtractParts(dests),
	})
}

var _ MultiFileSource = (*hemOncSource)(nil)
