package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/licensetracker/pkg/license"
)

// DefaultDir is where [FileExporter] writes reports when Dir is empty.
const DefaultDir = "output"

// keyWidth is the padded width of the key column in text reports.
const keyWidth = 30

// msgNothingToExport is printed when an exporter receives no dependencies.
const msgNothingToExport = "No dependencies to export"

// FileExporter writes one text report per dependency.
type FileExporter struct {
	Dir  string    // Output directory, created on demand (default [DefaultDir])
	Sink *Recorder // Status output (may be nil)
}

// Export writes a report for every dependency and returns the written paths
// in input order.
func (e *FileExporter) Export(deps []*license.Dependency, extraRows []string) ([]string, error) {
	if len(deps) == 0 {
		if e.Sink != nil {
			e.Sink.Println(msgNothingToExport)
		}
		return nil, nil
	}

	dir := e.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}

	paths := make([]string, 0, len(deps))
	for _, dep := range deps {
		path := filepath.Join(dir, FileName(dep))
		if err := exportFile(dep, extraRows, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (e *FileExporter) dir() string {
	if e.Dir == "" {
		return DefaultDir
	}
	return e.Dir
}

// FileName returns the report file name of dep: "{name}_{version}.txt" with
// every "." in the version replaced by "_".
func FileName(dep *license.Dependency) string {
	return fmt.Sprintf("%s_%s.txt", dep.Name, strings.ReplaceAll(dep.Version, ".", "_"))
}

func exportFile(dep *license.Dependency, extraRows []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteText(f, dep, extraRows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteText writes the text report of dep to w: one "key | value" line per
// row, with every further line of a multi-line value under a blank key.
func WriteText(w io.Writer, dep *license.Dependency, extraRows []string) error {
	bw := bufio.NewWriter(w)
	for _, row := range Rows(dep, extraRows) {
		lines := strings.Split(strings.TrimRight(row.Value, "\n"), "\n")
		for i, line := range lines {
			key := ""
			if i == 0 {
				key = row.Key
			}
			fmt.Fprintf(bw, "%-*s | %s\n", keyWidth, key, strings.TrimRight(line, "\r"))
		}
	}
	return bw.Flush()
}
