package license

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/matzehuels/licensetracker/pkg/integrations"
	"github.com/matzehuels/licensetracker/pkg/integrations/github"
	"github.com/matzehuels/licensetracker/pkg/integrations/pypi"
)

// fakeHost serves canned listings keyed by ref and records every call.
type fakeHost struct {
	mu       sync.Mutex
	contents map[string][]github.ContentItem
	status   map[string]int // ref -> HTTP status to fail the listing with
	tags     []github.Tag
	tagsErr  error
	files    map[string]string
	fetchErr error

	listed   []string
	tagCalls int
	fetched  []string
}

func (h *fakeHost) ListContents(_ context.Context, owner, repo, ref string) ([]github.ContentItem, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listed = append(h.listed, ref)
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/contents?ref=%s", owner, repo, ref)
	if code, ok := h.status[ref]; ok {
		return nil, &integrations.StatusError{StatusCode: code, URL: url}
	}
	items, ok := h.contents[ref]
	if !ok {
		return nil, &integrations.StatusError{StatusCode: http.StatusNotFound, URL: url}
	}
	return items, nil
}

func (h *fakeHost) ListTags(context.Context, string, string) ([]github.Tag, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tagCalls++
	return h.tags, h.tagsErr
}

func (h *fakeHost) FetchRaw(_ context.Context, downloadURL string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fetched = append(h.fetched, downloadURL)
	if h.fetchErr != nil {
		return "", h.fetchErr
	}
	return h.files[downloadURL], nil
}

func fileItem(name, url string) github.ContentItem {
	return github.ContentItem{Name: name, Path: name, Type: "file", SHA: "sha-" + name, DownloadURL: url}
}

// fakeProvider answers FetchPackage from a map keyed by package name.
type fakeProvider struct {
	packages map[string]*pypi.PackageInfo
	errs     map[string]error
}

func (p *fakeProvider) FetchPackage(_ context.Context, name, version string) (*pypi.PackageInfo, error) {
	if err, ok := p.errs[name]; ok {
		return nil, err
	}
	info, ok := p.packages[name]
	if !ok {
		return nil, fmt.Errorf("pypi package %s: %w", name, integrations.ErrNotFound)
	}
	out := *info
	if version != "" {
		out.Version = version
	}
	return &out, nil
}

func githubInfo(name, version, repo string) *pypi.PackageInfo {
	return &pypi.PackageInfo{
		Name:    name,
		Version: version,
		Summary: name + " summary",
		License: "MIT",
		ProjectURLs: pypi.ProjectURLs{
			{Label: "Documentation", URL: "https://" + name + ".readthedocs.io/"},
			{Label: "Source", URL: repo},
		},
	}
}
