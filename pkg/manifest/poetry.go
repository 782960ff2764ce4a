package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/licensetracker/pkg/license"
)

// PoetryLock parses poetry.lock files. Every locked package is returned,
// pinned to its locked version, in lock file order.
type PoetryLock struct{}

func (p *PoetryLock) Type() string              { return "poetry.lock" }
func (p *PoetryLock) Supports(name string) bool { return name == "poetry.lock" }

func (p *PoetryLock) Parse(path string) ([]license.PackageRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lock lockFile
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, err
	}

	var d dedup
	for _, pkg := range lock.Packages {
		if pkg.Name == "" {
			continue
		}
		d.add(license.PackageRef{Name: pkg.Name, Version: pkg.Version})
	}
	return d.refs, nil
}

type lockFile struct {
	Packages []lockPackage `toml:"package"`
}

type lockPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}
