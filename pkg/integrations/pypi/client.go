package pypi

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/licensetracker/pkg/errors"
	"github.com/matzehuels/licensetracker/pkg/integrations"
)

// DefaultBaseURL is the PyPI JSON API root.
const DefaultBaseURL = "https://pypi.org/pypi"

// PackageInfo holds metadata for a Python package release from PyPI.
//
// Version is always the version PyPI reports: for pinned requests it equals
// the requested version, for unpinned requests it is the latest release.
type PackageInfo struct {
	Name        string      // Package name as requested
	Version     string      // Resolved release version (never empty in valid info)
	Summary     string      // Short package description (may be empty)
	License     string      // Declared license name (may be empty)
	ProjectURLs ProjectURLs // Declared project URLs in the order PyPI lists them
}

// Client provides access to the PyPI package registry API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client. An empty baseURL uses [DefaultBaseURL].
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept": "application/json"}, timeout),
		baseURL: integrations.TrimSlash(baseURL),
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchPackage retrieves release metadata for a Python package.
//
// If version is non-empty the request targets that exact release; otherwise
// it targets the latest release.
//
// Returns:
//   - PackageInfo populated with metadata on success
//   - an error coded [errors.ErrCodeMetadataFetch] for any non-success status or
//     undecodable body; it wraps [integrations.ErrNotFound] for unknown packages
//   - an error coded [errors.ErrCodeVersionMismatch] if PyPI answers a pinned
//     request with a different version
func (c *Client) FetchPackage(ctx context.Context, name, version string) (*PackageInfo, error) {
	var data apiResponse
	if err := c.Get(ctx, c.URL(name, version), &data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMetadataFetch, err, "pypi package %s", describe(name, version))
	}
	if data.Info.Version == "" {
		return nil, errors.New(errors.ErrCodeMetadataFetch, "pypi package %s: response has no version", describe(name, version))
	}
	if version != "" && data.Info.Version != version {
		return nil, errors.New(errors.ErrCodeVersionMismatch,
			"pypi package %s: requested version %s but index returned %s", name, version, data.Info.Version)
	}

	return &PackageInfo{
		Name:        name,
		Version:     data.Info.Version,
		Summary:     data.Info.Summary,
		License:     data.Info.License,
		ProjectURLs: data.Info.ProjectURLs,
	}, nil
}

// URL builds the JSON API URL for a package, pinned to version when given.
func (c *Client) URL(name, version string) string {
	if version != "" {
		return fmt.Sprintf("%s/%s/%s/json", c.baseURL, name, version)
	}
	return fmt.Sprintf("%s/%s/json", c.baseURL, name)
}

func describe(name, version string) string {
	if version == "" {
		return name
	}
	return name + "==" + version
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name        string      `json:"name"`
	Version     string      `json:"version"`
	Summary     string      `json:"summary"`
	License     string      `json:"license"`
	ProjectURLs ProjectURLs `json:"project_urls"`
}
