package license

import (
	"fmt"
	"strings"

	"github.com/matzehuels/licensetracker/pkg/errors"
)

// PackageRef identifies a requested package, optionally pinned to a version.
// An empty Version means "whatever the index reports as latest".
type PackageRef struct {
	Name    string
	Version string
}

// ParsePackageRef splits a raw identifier such as "packaging==21.3" into a
// PackageRef. Whitespace around the name, the version and the "==" separator
// is dropped. Tokens without exactly one "==" are taken as an unpinned name.
func ParsePackageRef(raw string) PackageRef {
	s := strings.TrimSpace(raw)
	parts := strings.Split(s, "==")
	if len(parts) != 2 {
		return PackageRef{Name: s}
	}
	return PackageRef{
		Name:    strings.TrimSpace(parts[0]),
		Version: strings.TrimSpace(parts[1]),
	}
}

// ParsePackageRefs parses and validates every raw identifier.
func ParsePackageRefs(raw []string) ([]PackageRef, error) {
	refs := make([]PackageRef, 0, len(raw))
	for _, r := range raw {
		ref := ParsePackageRef(r)
		if err := ref.Validate(); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Validate checks that the name and version are safe to put into index URLs.
func (r PackageRef) Validate() error {
	if err := errors.ValidatePythonPackageName(r.Name); err != nil {
		return err
	}
	return errors.ValidateVersion(r.Version)
}

// String returns "name==version", or just the name when unpinned.
func (r PackageRef) String() string {
	if r.Version == "" {
		return r.Name
	}
	return r.Name + "==" + r.Version
}

// File is one license file found in a repository.
type File struct {
	Filename    string `json:"filename"`
	RawContent  string `json:"raw_content"`
	DownloadURL string `json:"url"`
	SHA         string `json:"sha"` // Git blob SHA reported by the source host
}

// Dependency is the fully resolved license record of one package at one version.
//
// A Dependency returned by [Analyzer.Analyze] always has at least one license file.
type Dependency struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	LicenseName string `json:"license_name"`
	Summary     string `json:"summary"`
	RepoURL     string `json:"project_url"` // Repository tree at Version
	Licenses    []File `json:"licenses"`
}

// String returns "name (version)".
func (d *Dependency) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.Version)
}

// Outcome is the result of analyzing one package: either a resolved
// Dependency or a skip because no license file could be found.
type Outcome struct {
	Ref        PackageRef
	Dependency *Dependency                 // Set when resolved
	Skipped    *errors.NoLicenseFoundError // Set when no license was found
}

// IsSkipped reports whether the package was skipped.
func (o Outcome) IsSkipped() bool { return o.Skipped != nil }

// Resolved returns the resolved dependencies of outcomes, in order.
func Resolved(outcomes []Outcome) []*Dependency {
	var deps []*Dependency
	for _, o := range outcomes {
		if o.Dependency != nil {
			deps = append(deps, o.Dependency)
		}
	}
	return deps
}
