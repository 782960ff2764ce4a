package github

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/matzehuels/licensetracker/pkg/errors"
	"github.com/matzehuels/licensetracker/pkg/integrations"
)

// DefaultAPIURL is the GitHub REST API root.
const DefaultAPIURL = "https://api.github.com"

// tagsPerPage is the page size of the single tag listing request.
const tagsPerPage = 100

// Client provides access to the GitHub contents and tags APIs, plus raw file
// downloads. Requests are unauthenticated.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client. An empty baseURL uses [DefaultAPIURL].
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	return &Client{
		Client:  integrations.NewClient(headers, timeout),
		baseURL: integrations.TrimSlash(baseURL),
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// ContentsURL builds the root directory listing URL of owner/repo at ref.
func (c *Client) ContentsURL(owner, repo, ref string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents?ref=%s", c.baseURL, owner, repo, url.QueryEscape(ref))
}

// TagsURL builds the tag listing URL of owner/repo.
func (c *Client) TagsURL(owner, repo string) string {
	return fmt.Sprintf("%s/repos/%s/%s/tags?per_page=%d", c.baseURL, owner, repo, tagsPerPage)
}

// ListContents lists the root directory of owner/repo at ref, in the order
// GitHub returns it. A ref that names no revision yields an error matching
// [integrations.ErrNotFound].
func (c *Client) ListContents(ctx context.Context, owner, repo, ref string) ([]ContentItem, error) {
	var items []ContentItem
	if err := c.Get(ctx, c.ContentsURL(owner, repo, ref), &items); err != nil {
		return nil, fmt.Errorf("list contents of %s/%s at %s: %w", owner, repo, ref, err)
	}
	return items, nil
}

// ListTags lists the tags of owner/repo in the order GitHub returns them.
func (c *Client) ListTags(ctx context.Context, owner, repo string) ([]Tag, error) {
	var tags []Tag
	if err := c.Get(ctx, c.TagsURL(owner, repo), &tags); err != nil {
		return nil, fmt.Errorf("list tags of %s/%s: %w", owner, repo, err)
	}
	return tags, nil
}

// FetchRaw downloads a file from its raw download URL and returns its full text.
// Any failure is coded [errors.ErrCodeNetwork].
func (c *Client) FetchRaw(ctx context.Context, downloadURL string) (string, error) {
	text, err := c.GetText(ctx, downloadURL)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNetwork, err, "download %s", downloadURL)
	}
	return text, nil
}
