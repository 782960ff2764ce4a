package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/licensetracker/pkg/license"
)

// WriteJSON encodes deps as an indented JSON array and writes it to w.
// An empty input is written as [].
func WriteJSON(w io.Writer, deps []*license.Dependency) error {
	if deps == nil {
		deps = []*license.Dependency{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(deps); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes deps to a JSON file at path.
func ExportJSON(deps []*license.Dependency, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteJSON(f, deps); err != nil {
		return err
	}
	return f.Close()
}
