package source

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

const (
	rxNormVersionURL = "https://rxnav.nlm.nih.gov/REST/version.json"
	rxNormFileURL    = "https://download.nlm.nih.gov/umls/kss/rxnorm/RxNorm_full_%s.zip"
	rxNormGatewayURL = "https://uts-ws.nlm.nih.gov/download"

	// EnvUMLSAPIKey names the UMLS Terminology Services API key required to
	// download RxNorm data.
	EnvUMLSAPIKey = "UMLS_API_KEY"
)

// rxNormSource provides access to the RxNorm database. Downloads go through
// the UMLS UTS gateway and require an API key in the environment; the key is
// checked before any network call.
type rxNormSource struct {
	client *wagshttp.Client
	dl     download.Manager
}

// NewRxNorm creates the retrieval engine for RxNorm.
func NewRxNorm(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &rxNormSource{client: opts.Client, dl: opts.Downloader}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *rxNormSource) Name() string     { return "rxnorm" }
func (s *rxNormSource) FileType() string { return "RRF" }

func (s *rxNormSource) FetchLatestVersion(ctx context.Context) (string, error) {
	var payload struct {
		Version string `json:"version"`
	}
	if err := s.client.GetJSON(ctx, rxNormVersionURL, nil, &payload); err != nil {
		return "", err
	}
	v, err := version.ParseDate(payload.Version, "02-Jan-2006")
	if err != nil {
		return "", pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "unable to parse latest RxNorm version from API endpoint: %s", rxNormVersionURL)
	}
	return v, nil
}

func (s *rxNormSource) Download(ctx context.Context, ver, dest string) error {
	apiKey := os.Getenv(EnvUMLSAPIKey)
	if apiKey == "" {
		return pkgerrors.Wrapf(pkgerrors.ErrMissingCredential, "%s", EnvUMLSAPIKey)
	}

	t, err := time.Parse(version.DateLayout, ver)
	if err != nil {
		return pkgerrors.Wrapf(pkgerrors.ErrVersionParse, "invalid version value %q", ver)
	}
	fileURL := fmt.Sprintf(rxNormFileURL, t.Format("01022006"))

	return s.dl.Fetch(ctx, download.Item{
		URL:     fmt.Sprintf("%s?url=%s&apiKey=%s", rxNormGatewayURL, url.QueryEscape(fileURL), url.QueryEscape(apiKey)),
		Dest:    dest,
		Handler: download.ExtractMatch("rrf/RXNCONSO.RRF"),
	})
}
