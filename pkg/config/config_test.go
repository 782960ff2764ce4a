package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/licensetracker/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, 10*time.Second, cfg.Timeout.Std())
	assert.Empty(t, cfg.ExtraRows)
}

func TestLoadFile_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "licensetracker.toml",
			content: `extra_rows = ["approved_by", "notes"]
workers = 8
timeout = "30s"
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `extra_rows:
  - approved_by
  - notes
workers: 8
timeout: 30s
`,
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"extra_rows": ["approved_by", "notes"], "workers": 8, "timeout": "30s"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			cfg, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, []string{"approved_by", "notes"}, cfg.ExtraRows)
			assert.Equal(t, 8, cfg.Workers)
			assert.Equal(t, 30*time.Second, cfg.Timeout.Std())
			assert.Equal(t, "output", cfg.OutputDir, "unset keys keep defaults")
		})
	}
}

func TestLoadFile_Empty(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml", "config.json"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadFile(writeFile(t, t.TempDir(), name, ""))
			require.NoError(t, err)
			assert.Equal(t, Default(), *cfg)
		})
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "unknown toml key", file: "config.toml", content: `extra_row = ["x"]`},
		{name: "unknown yaml key", file: "config.yaml", content: "extra_row: [x]\n"},
		{name: "unknown json key", file: "config.json", content: `{"extra_row": ["x"]}`},
		{name: "bad duration", file: "config.toml", content: `timeout = "soon"`},
		{name: "zero workers", file: "config.json", content: `{"workers": 0}`},
		{name: "blank extra row", file: "config.json", content: `{"extra_rows": [" "]}`},
		{name: "bad url", file: "config.json", content: `{"pypi_url": "ftp://pypi.org"}`},
		{name: "malformed", file: "config.json", content: `{`},
		{name: "unsupported format", file: "config.ini", content: "workers=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, t.TempDir(), tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestFind(t *testing.T) {
	t.Setenv(EnvPath, "")

	t.Run("none", func(t *testing.T) {
		path, err := Find(t.TempDir(), "")
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("search order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config.json", `{}`)
		want := writeFile(t, dir, "config.toml", ``)

		path, err := Find(dir, "")
		require.NoError(t, err)
		assert.Equal(t, want, path)
	})

	t.Run("explicit wins", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "licensetracker.toml", ``)
		explicit := writeFile(t, dir, "custom.yaml", ``)
		t.Setenv(EnvPath, filepath.Join(dir, "licensetracker.toml"))

		path, err := Find(dir, explicit)
		require.NoError(t, err)
		assert.Equal(t, explicit, path)
	})

	t.Run("env", func(t *testing.T) {
		dir := t.TempDir()
		env := writeFile(t, dir, "env.json", `{}`)
		t.Setenv(EnvPath, env)

		path, err := Find(t.TempDir(), "")
		require.NoError(t, err)
		assert.Equal(t, env, path)
	})

	t.Run("explicit missing", func(t *testing.T) {
		_, err := Find(t.TempDir(), "/does/not/exist.toml")
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
	})
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvPath, "")

	cfg, path, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), *cfg)

	dir := t.TempDir()
	want := writeFile(t, dir, "config.json", `{"extra_rows": ["reviewed"]}`)
	cfg, path, err = Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.Equal(t, []string{"reviewed"}, cfg.ExtraRows)
}

func TestLoad_SharedNamesIgnoreUnknownKeys(t *testing.T) {
	t.Setenv(EnvPath, "")

	tests := []struct {
		file    string
		content string
		rows    []string
	}{
		{file: "config.json", content: `{"extra_rows": ["approved_by"], "reviewer": "legal"}`, rows: []string{"approved_by"}},
		{file: "config.yaml", content: "server:\n  port: 8080\n", rows: []string{}},
		{file: "config.yml", content: "extra_rows: [notes]\nlog_level: info\n", rows: []string{"notes"}},
		{file: "config.toml", content: "[server]\nport = 8080\n", rows: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			dir := t.TempDir()
			want := writeFile(t, dir, tt.file, tt.content)

			cfg, path, err := Load(dir, "")
			require.NoError(t, err)
			assert.Equal(t, want, path)
			assert.Equal(t, tt.rows, cfg.ExtraRows)
			assert.Equal(t, DefaultWorkers, cfg.Workers)
		})
	}
}

func TestLoad_OwnFilesRejectUnknownKeys(t *testing.T) {
	t.Setenv(EnvPath, "")

	t.Run("licensetracker.toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "licensetracker.toml", "extra_row = [\"x\"]\n")

		_, _, err := Load(dir, "")
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
	})

	t.Run("explicit", func(t *testing.T) {
		explicit := writeFile(t, t.TempDir(), "config.json", `{"reviewer": "legal"}`)

		_, _, err := Load(t.TempDir(), explicit)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
	})

	t.Run("env", func(t *testing.T) {
		env := writeFile(t, t.TempDir(), "config.yaml", "server:\n  port: 8080\n")
		t.Setenv(EnvPath, env)

		_, _, err := Load(t.TempDir(), "")
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.ExtraRows = []string{"notes"}
	cfg.Timeout = Duration(time.Minute)

	for _, ext := range []string{".toml", ".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, &cfg, ext))

			got, err := LoadFile(writeFile(t, t.TempDir(), "config"+ext, buf.String()))
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}
