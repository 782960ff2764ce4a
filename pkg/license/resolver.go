package license

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensetracker/pkg/errors"
	"github.com/matzehuels/licensetracker/pkg/integrations"
	"github.com/matzehuels/licensetracker/pkg/integrations/github"
	"github.com/matzehuels/licensetracker/pkg/observability"
)

// SourceHost is the source-code host API the resolver reads repositories from.
// [github.Client] implements it.
type SourceHost interface {
	ListContents(ctx context.Context, owner, repo, ref string) ([]github.ContentItem, error)
	ListTags(ctx context.Context, owner, repo string) ([]github.Tag, error)
	FetchRaw(ctx context.Context, downloadURL string) (string, error)
}

// Resolver locates the license files of a repository at a given version.
//
// Resolving one repository costs at most two listing calls and one tag call,
// plus one download per license file.
type Resolver struct {
	host   SourceHost
	logger *log.Logger
}

// NewResolver creates a Resolver reading from host. A nil logger uses log.Default().
func NewResolver(host SourceHost, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{host: host, logger: logger}
}

// VersionedURL returns the browsable tree of repoURL at version.
// repoURL must carry a trailing slash, as returned by [RepoURLResolver.Extract].
func VersionedURL(repoURL, version string) string {
	return repoURL + "tree/" + version
}

// Candidates lists the root entries of repoURL at ref whose name contains
// "license" (case-insensitively), in host order. The list may be empty.
//
// When ref is not found and retried is false, the repository's tags are
// searched for the first one naming ref, and the listing is repeated once
// against that tag. A second miss, a miss with no matching tag, or any other
// failure is returned as is.
func (r *Resolver) Candidates(ctx context.Context, repoURL, ref string, retried bool) ([]github.ContentItem, error) {
	owner, repo, err := github.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	items, err := r.host.ListContents(ctx, owner, repo, ref)
	if err != nil {
		if retried || !integrations.IsNotFound(err) {
			return nil, err
		}
		tags, tagErr := r.host.ListTags(ctx, owner, repo)
		if tagErr != nil {
			return nil, tagErr
		}
		tag, ok := matchTag(tags, ref)
		if !ok {
			return nil, err
		}
		r.logger.Debug("ref not found, retrying with tag", "repo", repoURL, "ref", ref, "tag", tag)
		observability.Analysis().OnTagFallback(ctx, repoURL, ref, tag)
		return r.Candidates(ctx, repoURL, tag, true)
	}

	var candidates []github.ContentItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), "license") {
			candidates = append(candidates, item)
		}
	}
	return candidates, nil
}

// Resolve downloads every license file of repoURL at version, in the order the
// host lists them.
//
// It fails with a [errors.NoLicenseFoundError] when the listing is rejected by
// the host or yields no license file. Transport failures and failed downloads
// are returned unconverted.
func (r *Resolver) Resolve(ctx context.Context, repoURL, version string) ([]File, error) {
	candidates, err := r.Candidates(ctx, repoURL, version, false)
	if err != nil {
		var se *integrations.StatusError
		if stderrors.As(err, &se) {
			return nil, &errors.NoLicenseFoundError{
				Version: version,
				Reason:  "Could not fetch license files",
				Cause:   err,
			}
		}
		return nil, err
	}

	files := make([]File, 0, len(candidates))
	for _, c := range candidates {
		if c.DownloadURL == "" {
			r.logger.Debug("skipping license entry without content", "repo", repoURL, "name", c.Name, "type", c.Type)
			continue
		}
		text, err := r.host.FetchRaw(ctx, c.DownloadURL)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Filename:    c.Name,
			RawContent:  text,
			DownloadURL: c.DownloadURL,
			SHA:         c.SHA,
		})
	}

	if len(files) == 0 {
		return nil, &errors.NoLicenseFoundError{
			Version: version,
			Reason:  "No licenses found in repo",
		}
	}
	return files, nil
}

// matchTag returns the first tag, in host order, whose name contains ref.
// Only when no tag contains ref literally are separators compared loosely, so
// "2.9.3" also finds "2_9_3" or "v2-9-3".
func matchTag(tags []github.Tag, ref string) (string, bool) {
	for _, t := range tags {
		if strings.Contains(t.Name, ref) {
			return t.Name, true
		}
	}
	loose := normalizeSeparators(ref)
	for _, t := range tags {
		if strings.Contains(normalizeSeparators(t.Name), loose) {
			return t.Name, true
		}
	}
	return "", false
}

var separatorReplacer = strings.NewReplacer("_", ".", "-", ".")

func normalizeSeparators(s string) string {
	return separatorReplacer.Replace(s)
}
