package manifest

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/matzehuels/licensetracker/pkg/license"
)

var (
	depNameRE = regexp.MustCompile(`^([a-zA-Z0-9][-a-zA-Z0-9._]*)`)
	pinnedRE  = regexp.MustCompile(`^==\s*([^\s,;=]+)\s*(?:;.*)?$`)
)

// Requirements parses pip requirements files.
type Requirements struct{}

func (r *Requirements) Type() string { return "requirements.txt" }

func (r *Requirements) Supports(name string) bool {
	return name == "requirements.txt" ||
		(strings.HasPrefix(name, "requirements") && strings.HasSuffix(name, ".txt"))
}

func (r *Requirements) Parse(path string) ([]license.PackageRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var d dedup
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if ref, ok := parseRequirement(scanner.Text()); ok {
			d.add(ref)
		}
	}
	return d.refs, scanner.Err()
}

// parseRequirement reads one requirements line. Only an exact "==" pin with
// no further specifier yields a version.
func parseRequirement(line string) (license.PackageRef, bool) {
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' || line[0] == '-' {
		return license.PackageRef{}, false
	}
	if strings.Contains(line, "://") || strings.HasPrefix(line, "git+") {
		return license.PackageRef{}, false
	}

	m := depNameRE.FindStringSubmatch(line)
	if m == nil {
		return license.PackageRef{}, false
	}
	ref := license.PackageRef{Name: m[1]}

	rest := strings.TrimSpace(line[len(m[1]):])
	if strings.HasPrefix(rest, "[") {
		if end := strings.Index(rest, "]"); end >= 0 {
			rest = strings.TrimSpace(rest[end+1:])
		}
	}
	if pin := pinnedRE.FindStringSubmatch(rest); pin != nil && !strings.Contains(pin[1], "*") {
		ref.Version = pin[1]
	}
	return ref, true
}
