package github

// ContentItem represents an item in a repository directory listing.
type ContentItem struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int    `json:"size"`
	Type        string `json:"type"` // "file", "dir", "symlink" or "submodule"
	DownloadURL string `json:"download_url"`
}

// Tag represents a repository tag.
type Tag struct {
	Name string `json:"name"`
}
