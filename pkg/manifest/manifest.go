// Package manifest reads package references from Python dependency files.
//
// # Supported files
//
//   - requirements*.txt: one requirement per line; "name==version" lines are
//     pinned, any other specifier is looked up unpinned
//   - poetry.lock: every locked package, pinned to its locked version
//
// Comments, options ("-r", "-e", ...), URLs and VCS references are skipped.
// Packages are deduplicated by normalized name, keeping the first occurrence.
//
// # Usage
//
//	refs, err := manifest.Parse("requirements.txt")
//	if err != nil {
//	    return err
//	}
//	outcomes, err := license.NewBatch(analyzer, 4).Run(ctx, refs, nil)
package manifest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/matzehuels/licensetracker/pkg/errors"
	"github.com/matzehuels/licensetracker/pkg/license"
)

// Parser reads package references from one kind of dependency file.
type Parser interface {
	// Type returns the manifest type, e.g. "requirements.txt".
	Type() string
	// Supports reports whether the parser handles a file with this base name.
	Supports(name string) bool
	// Parse reads the file at path.
	Parse(path string) ([]license.PackageRef, error)
}

// Parsers returns every supported parser.
func Parsers() []Parser {
	return []Parser{&Requirements{}, &PoetryLock{}}
}

// Detect returns the parser for path based on its file name.
func Detect(path string) (Parser, error) {
	name := filepath.Base(path)
	for _, p := range Parsers() {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported manifest %q: want requirements*.txt or poetry.lock", name)
}

// Parse detects the type of the file at path and reads its package references.
func Parse(path string) ([]license.PackageRef, error) {
	p, err := Detect(path)
	if err != nil {
		return nil, err
	}
	refs, err := p.Parse(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	for _, ref := range refs {
		if err := ref.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return refs, nil
}

// Merge concatenates ref lists, dropping later duplicates of a normalized name.
func Merge(lists ...[]license.PackageRef) []license.PackageRef {
	var d dedup
	for _, refs := range lists {
		for _, ref := range refs {
			d.add(ref)
		}
	}
	return d.refs
}

var separatorRun = regexp.MustCompile(`[-_.]+`)

// Normalize returns the canonical form of a Python package name: lowercase
// with every run of "-", "_" and "." collapsed to a single "-".
func Normalize(name string) string {
	return separatorRun.ReplaceAllString(strings.ToLower(name), "-")
}

type dedup struct {
	seen map[string]bool
	refs []license.PackageRef
}

func (d *dedup) add(ref license.PackageRef) {
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	key := Normalize(ref.Name)
	if d.seen[key] {
		return
	}
	d.seen[key] = true
	d.refs = append(d.refs, ref)
}
