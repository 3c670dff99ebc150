package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/mod/semver"
)

const releasesPage = "https://github.com/roffe/txgraph/releases"

var latestURL = "https://api.github.com/repos/roffe/txgraph/releases/latest"

type Release struct {
	HTMLURL     string    `json:"html_url"`
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Draft       bool      `json:"draft"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
}

// UpdateCheck tells the user whether a newer release exists.
func UpdateCheck(a fyne.App, w fyne.Window) {
	isLatest, latestVersion := IsLatest(context.Background(), "v"+a.Metadata().Version)
	if isLatest {
		dialog.ShowInformation("No update available", "You are running the latest version", w)
		return
	}
	ShowAvailable(a, w, latestVersion)
}

func ShowAvailable(a fyne.App, w fyne.Window, latestVersion string) {
	u, err := url.Parse(releasesPage)
	if err != nil {
		panic(err)
	}
	link := widget.NewHyperlink("Download from GitHub", u)
	link.TextStyle = fyne.TextStyle{Bold: true}
	dialog.ShowCustom(
		"Update available",
		"Close",
		container.NewVBox(
			widget.NewLabel("Current version: v"+a.Metadata().Version),
			widget.NewLabel("Latest version: "+latestVersion),
			link,
		),
		w,
	)
}

func GetLatest(ctx context.Context) (*Release, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("latest release: %s", resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	latest := new(Release)
	if err := json.Unmarshal(b, latest); err != nil {
		return nil, fmt.Errorf("latest release: %w", err)
	}
	return latest, nil
}

// IsLatest compares version against the newest release. Lookup failures
// report version as the latest.
func IsLatest(ctx context.Context, version string) (bool, string) {
	latest, err := GetLatest(ctx)
	if err != nil || !semver.IsValid(latest.TagName) {
		return true, version
	}
	return semver.Compare(latest.TagName, version) <= 0, latest.TagName
}
