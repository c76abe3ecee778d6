package source

import (
	"context"
	"fmt"

	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
	wagshttp "github.com/GenomicMedLab/wags-tails/pkg/http"
)

const githubAPIBase = "https://api.github.com/repos"

// githubRelease is the subset of the GitHub release record the adapters
// consume.
type githubRelease struct {
	TagName    string        `json:"tag_name"`
	TarballURL string        `json:"tarball_url"`
	Assets     []githubAsset `json:"assets"`
}

type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// githubReleases talks to the GitHub releases API for one repository.
// Listings are returned newest first, so "latest" is the first entry.
type githubReleases struct {
	client *wagshttp.Client
	repo   string // owner/name
}

func (g *githubReleases) list(ctx context.Context) ([]githubRelease, error) {
	url := fmt.Sprintf("%s/%s/releases", githubAPIBase, g.repo)
	var releases []githubRelease
	if err := g.client.GetJSON(ctx, url, nil, &releases); err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "no releases found for %s", g.repo)
	}
	return releases, nil
}

func (g *githubReleases) latest(ctx context.Context) (githubRelease, error) {
	url := fmt.Sprintf("%s/%s/releases/latest", githubAPIBase, g.repo)
	var release githubRelease
	if err := g.client.GetJSON(ctx, url, nil, &release); err != nil {
		return githubRelease{}, err
	}
	if release.TagName == "" {
		return githubRelease{}, pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "no latest release for %s", g.repo)
	}
	return release, nil
}

func (g *githubReleases) byTag(ctx context.Context, tag string) (githubRelease, error) {
	url := fmt.Sprintf("%s/%s/releases/tags/%s", githubAPIBase, g.repo, tag)
	var release githubRelease
	if err := g.client.GetJSON(ctx, url, nil, &release); err != nil {
		return githubRelease{}, err
	}
	if release.TagName == "" {
		return githubRelease{}, pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "no release %s for %s", tag, g.repo)
	}
	return release, nil
}

// assetURL finds the download URL of a named release asset.
func (r githubRelease) assetURL(name string) (string, error) {
	for _, asset := range r.Assets {
		if asset.Name == name {
			return asset.BrowserDownloadURL, nil
		}
	}
	return "", pkgerrors.Wrapf(pkgerrors.ErrRemoteData, "unable to retrieve %s under release %s", name, r.TagName)
}
