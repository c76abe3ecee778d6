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
	chemblReadmeURL   = "https://ftp.ebi.ac.uk/pub/databases/chembl/ChEMBLdb/latest/README"
	chemblDownloadURL = "https://ftp.ebi.ac.uk/pub/databases/chembl/ChEMBLdb/latest/chembl_%s_sqlite.tar.gz"
)

var chemblReleasePattern = regexp.MustCompile(`\*\s*Release:\s*chembl_(\d+)`)

// chemblSource provides access to the ChEMBL database. The release number is
// published in the README of the latest-release FTP directory; the data file
// is a SQLite database inside a tarball.
type chemblSource struct {
	client *wagshttp.Client
	dl     download.Manager
}

// NewChembl creates the retrieval engine for ChEMBL.
func NewChembl(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	src := &chemblSource{client: opts.Client, dl: opts.Downloader}
	return NewEngine(src, opts.engineOptions()...)
}

func (s *chemblSource) Name() string     { return "chembl" }
func (s *chemblSource) FileType() string { return "db" }

func (s *chemblSource) FetchLatestVersion(ctx context.Context) (string, error) {
	readme, err := s.client.GetText(ctx, chemblReadmeURL, nil)
	if err != nil {
		return "", err
	}
	m := chemblReleasePattern.FindStringSubmatch(readme)
	if m == nil {
		return "", pkgerrors.Wrap(pkgerrors.ErrRemoteData, "unable to parse latest ChEMBL version number from release README")
	}
	return m[1], nil
}

func (s *chemblSource) Download(ctx context.Context, version, dest string) error {
	return s.dl.Fetch(ctx, download.Item{
		URL:     fmt.Sprintf(chemblDownloadURL, version),
		Dest:    dest,
		Handler: download.ExtractMatch("chembl_*.db"),
	})
}
