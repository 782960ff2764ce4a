package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/licensetracker/pkg/errors"
	"github.com/matzehuels/licensetracker/pkg/license"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"requirements.txt", "requirements.txt"},
		{"deploy/requirements-dev.txt", "requirements.txt"},
		{"requirements_prod.txt", "requirements.txt"},
		{"/src/poetry.lock", "poetry.lock"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := Detect(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Type())
		})
	}

	for _, path := range []string{"pyproject.toml", "Pipfile", "package.json"} {
		_, err := Detect(path)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), path)
	}
}

func TestRequirements_Parse(t *testing.T) {
	path := writeFile(t, "requirements.txt", `# Test requirements
requests>=2.28.0
click==8.1.0
pydantic>=2.0,<3
# Comment line
httpx
uvicorn[standard]==0.23.2  # with extras
Django == 4.2.7 ; python_version >= "3.8"
pytest==7.*
packaging===21.3

# Empty lines above
-r other.txt
-e ./local-package
git+https://github.com/user/repo.git
https://example.org/pkg.tar.gz
requests==2.31.0
`)

	refs, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []license.PackageRef{
		{Name: "requests"},
		{Name: "click", Version: "8.1.0"},
		{Name: "pydantic"},
		{Name: "httpx"},
		{Name: "uvicorn", Version: "0.23.2"},
		{Name: "Django", Version: "4.2.7"},
		{Name: "pytest"},
		{Name: "packaging"},
	}, refs)
}

func TestPoetryLock_Parse(t *testing.T) {
	path := writeFile(t, "poetry.lock", `[[package]]
name = "certifi"
version = "2023.7.22"
description = "Python package for providing Mozilla's CA Bundle."
category = "main"

[[package]]
name = "requests"
version = "2.31.0"

[package.dependencies]
certifi = ">=2017.4.17"

[metadata]
lock-version = "2.0"
`)

	refs, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []license.PackageRef{
		{Name: "certifi", Version: "2023.7.22"},
		{Name: "requests", Version: "2.31.0"},
	}, refs)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "requirements.txt"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = Parse(writeFile(t, "poetry.lock", `[[package]`))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = Parse(writeFile(t, "requirements.txt", "requests==2.0/../x\n"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	got := Merge(
		[]license.PackageRef{{Name: "Django", Version: "4.2.7"}, {Name: "requests"}},
		[]license.PackageRef{{Name: "django"}, {Name: "typing_extensions", Version: "4.8.0"}},
		[]license.PackageRef{{Name: "typing-extensions"}},
	)
	assert.Equal(t, []license.PackageRef{
		{Name: "Django", Version: "4.2.7"},
		{Name: "requests"},
		{Name: "typing_extensions", Version: "4.8.0"},
	}, got)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "typing-extensions", Normalize("Typing_Extensions"))
	assert.Equal(t, "zope-interface", Normalize("zope.interface"))
	assert.Equal(t, "a-b", Normalize("a-._b"))
}
