package source

import (
	"context"
	"fmt"
	"regexp"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
)

const (
	ncitBrowserURL = "https://ncithesaurus.nci.nih.gov/ncitbrowser/"
	ncitFTPBase    = "https://evs.nci.nih.gov/ftp1/NCI_Thesaurus"
)

var ncitVersionPattern = regexp.MustCompile(`Version:\s*(\d\d\.\d\d\w)`)

// ncitSource provides access to the NCI Thesaurus. The current version is
// scraped from the browser homepage; release files move between several
// archive directory layouts over time, so the download URL is probed along
// a fallback chain.
type ncitSource struct {
	client *wagshttp.Client
	dl     download.Manager
}

// NewNcit creates the retrieval engine for the NCI Thesaurus.
func NewNcit(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &ncitSource{client: opts.Client, dl: opts.Downloader}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *ncitSource) Name() string     { return "ncit" }
func (s *ncitSource) FileType() string { return "owl" }

func (s *ncitSource) FetchLatestVersion(ctx context.Context) (string, error) {
	page, err := s.client.GetText(ctx, ncitBrowserURL, nil)
	if err != nil {
		return "", err
	}
	m := ncitVersionPattern.FindStringSubmatch(page)
	if m == nil {
		return "", pkgerrors.Wrap(pkgerrors.ErrRemoteData, "unable to parse latest NCIt version number from homepage HTML")
	}
	return m[1], nil
}

// resolveURL locates the release file for a version, trying the current
// release directory first and then the two historical archive layouts.
func (s *ncitSource) resolveURL(ctx context.Context, version string) (string, error) {
	release := fmt.Sprintf("Thesaurus_%s.OWL.zip", version)
	candidates := []string{
		fmt.Sprintf("%s/%s", ncitFTPBase, release),
		fmt.Sprintf("%s/archive/%s_Release/%s", ncitFTPBase, version, release),
		fmt.Sprintf("%s/archive/20%s/%s_Release/%s", ncitFTPBase, version[0:2], version, release),
	}
	for _, url := range candidates {
		ok, err := s.client.Check(ctx, url)
		if err != nil {
			return "", err
		}
		if ok {
			return url, nil
		}
	}
	return "", pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "unable to locate URL for NCIt version %s", version)
}

func (s *ncitSource) Download(ctx context.Context, version, dest string) error {
	url, err := s.resolveURL(ctx, version)
	if err != nil {
		return err
	}
	return s.dl.Fetch(ctx, download.Item{
		URL:     url,
		Dest:    dest,
		Handler: download.ExtractLargest(),
	})
}
