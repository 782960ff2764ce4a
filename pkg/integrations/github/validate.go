package github

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Owner and repository names accepted in canonical repository URLs.
var validName = regexp.MustCompile(`^[-\w]+$`)

// ValidateOwner validates a GitHub username or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return errors.New("owner is required")
	}
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner %q: must be word characters or hyphens", owner)
	}
	return nil
}

// ValidateRepo validates a GitHub repository name.
func ValidateRepo(repo string) error {
	if repo == "" {
		return errors.New("repo is required")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repo %q: must be word characters or hyphens", repo)
	}
	return nil
}

// ParseRepoURL splits a canonical repository URL such as
// "https://github.com/org/project/" into owner and repository name.
func ParseRepoURL(repoURL string) (owner, repo string, err error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid repository url %q: %w", repoURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository url %q: want https://<host>/<owner>/<repo>/", repoURL)
	}
	owner, repo = parts[0], parts[1]
	if err := ValidateOwner(owner); err != nil {
		return "", "", err
	}
	if err := ValidateRepo(repo); err != nil {
		return "", "", err
	}
	return owner, repo, nil
}
