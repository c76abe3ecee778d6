package source

import (
	"context"
	"regexp"

	"github.com/GenomicMedLab/wags-tails/pkg/download"
	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
	"github.com/GenomicMedLab/wags-tails/pkg/version"
)

const chemIDplusURL = "https://ftp.nlm.nih.gov/projects/chemidlease/CurrentChemID.xml"

var chemIDplusDatePattern = regexp.MustCompile(` date="([0-9]{4}-[0-9]{2}-[0-9]{2})">`)

// chemIDplusSource provides access to the ChemIDplus database. The release
// date sits in the opening tag of the data file itself, so version discovery
// uses a ranged request for the first few hundred bytes.
type chemIDplusSource struct {
	client *wagshttp.Client
	dl     download.Manager
}

// NewChemIDplus creates the retrieval engine for ChemIDplus.
func NewChemIDplus(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &chemIDplusSource{client: opts.Client, dl: opts.Downloader}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *chemIDplusSource) Name() string     { return "chemidplus" }
func (s *chemIDplusSource) FileType() string { return "xml" }

func (s *chemIDplusSource) FetchLatestVersion(ctx context.Context) (string, error) {
	// Leave some slack past the XML declaration to capture the date attribute.
	head, err := s.client.GetText(ctx, chemIDplusURL, map[string]string{"Range": "bytes=0-300"})
	if err != nil {
		return "", err
	}
	m := chemIDplusDatePattern.FindStringSubmatch(head)
	if m == nil {
		return "", pkgerrors.Wrap(pkgerrors.ErrRemoteData, "unable to parse latest ChemIDplus version number from partial access to latest file")
	}
	return version.ParseDate(m[1], "2006-01-02")
}

func (s *chemIDplusSource) Download(ctx context.Context, _ string, dest string) error {
	return s.dl.Fetch(ctx, download.Item{URL: chemIDplusURL, Dest: dest})
}
