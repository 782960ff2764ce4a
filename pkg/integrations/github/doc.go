// Package github provides an HTTP client for the parts of the GitHub API
// needed to locate license files.
//
// # Overview
//
// Three endpoints are used:
//
//   - GET /repos/{owner}/{repo}/contents?ref={ref}: root directory listing at a revision
//   - GET /repos/{owner}/{repo}/tags: tag names, used when a version is not a revision name
//   - GET {download_url}: raw file content
//
// # Usage
//
//	client := github.NewClient("", 10*time.Second)
//
//	owner, repo, err := github.ParseRepoURL("https://github.com/django/django/")
//	items, err := client.ListContents(ctx, owner, repo, "4.2.7")
//	for _, item := range items {
//	    text, err := client.FetchRaw(ctx, item.DownloadURL)
//	    // ...
//	}
//
// # Authentication
//
// Requests are unauthenticated, so GitHub's anonymous rate limit applies.
package github
