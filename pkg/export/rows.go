package export

import (
	"fmt"

	"github.com/matzehuels/licensetracker/pkg/license"
)

// Row keys in report order.
const (
	KeyName        = "name"
	KeyVersion     = "version"
	KeyLicenseName = "license_name"
	KeySummary     = "summary"
	KeyProjectURL  = "project_url"
	KeyLicenses    = "licenses"
)

// Row is one key/value line of a dependency report. Value may span lines.
type Row struct {
	Key   string
	Value string
}

// Rows lays out dep as report rows: the package fields, one [KeyLicenses] row
// per license file in resolution order, then one row per extra key with an
// empty value.
func Rows(dep *license.Dependency, extraRows []string) []Row {
	rows := make([]Row, 0, 5+len(dep.Licenses)+len(extraRows))
	rows = append(rows,
		Row{Key: KeyName, Value: dep.Name},
		Row{Key: KeyVersion, Value: dep.Version},
		Row{Key: KeyLicenseName, Value: dep.LicenseName},
		Row{Key: KeySummary, Value: dep.Summary},
		Row{Key: KeyProjectURL, Value: dep.RepoURL},
	)
	for _, f := range dep.Licenses {
		rows = append(rows, Row{Key: KeyLicenses, Value: licenseValue(f)})
	}
	for _, key := range extraRows {
		rows = append(rows, Row{Key: key})
	}
	return rows
}

// licenseValue prefixes the license text with a "filename (url)" header line.
func licenseValue(f license.File) string {
	header := f.Filename
	if f.DownloadURL != "" {
		header = fmt.Sprintf("%s (%s)", f.Filename, f.DownloadURL)
	}
	if f.RawContent == "" {
		return header
	}
	return header + "\n" + f.RawContent
}
