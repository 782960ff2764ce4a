package license

import (
	"regexp"

	"github.com/matzehuels/licensetracker/pkg/errors"
	"github.com/matzehuels/licensetracker/pkg/integrations/pypi"
)

// HostMatcher recognizes repository URLs of one source host.
type HostMatcher interface {
	// Host returns the source host name, e.g. "github.com".
	Host() string
	// Match returns the canonical repository URL (with a trailing slash)
	// if rawURL points into a repository on this host.
	Match(rawURL string) (string, bool)
}

var githubRepoPattern = regexp.MustCompile(`^(https?://github\.com/[-_\w]+/[-_\w]+)`)

// GitHubMatcher matches http(s)://github.com/<owner>/<repo> URLs.
type GitHubMatcher struct{}

// Host implements [HostMatcher].
func (GitHubMatcher) Host() string { return "github.com" }

// Match implements [HostMatcher].
func (GitHubMatcher) Match(rawURL string) (string, bool) {
	m := githubRepoPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1] + "/", true
}

// RepoURLResolver extracts a canonical repository URL from declared project URLs.
type RepoURLResolver struct {
	matchers []HostMatcher
}

// NewRepoURLResolver creates a resolver over the given host matchers.
// With no matchers it recognizes GitHub only.
func NewRepoURLResolver(matchers ...HostMatcher) *RepoURLResolver {
	if len(matchers) == 0 {
		matchers = []HostMatcher{GitHubMatcher{}}
	}
	return &RepoURLResolver{matchers: matchers}
}

// Extract returns the first project URL, in declaration order, that any
// matcher recognizes. It fails with [errors.ErrCodeProjectURLNotFound] when
// nothing matches; no other host is tried.
func (r *RepoURLResolver) Extract(urls pypi.ProjectURLs) (string, error) {
	for _, u := range urls {
		if u.URL == "" {
			continue
		}
		for _, m := range r.matchers {
			if repo, ok := m.Match(u.URL); ok {
				return repo, nil
			}
		}
	}
	return "", errors.New(errors.ErrCodeProjectURLNotFound, "Could not find project url")
}
