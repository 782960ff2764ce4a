package pypi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectURLs_PreservesOrder(t *testing.T) {
	// Django's project_urls as served by PyPI.
	data := []byte(`{
		"Documentation": "https://docs.djangoproject.com/",
		"Funding": "https://www.djangoproject.com/fundraising/",
		"Homepage": "https://www.djangoproject.com/",
		"Release notes": "https://docs.djangoproject.com/en/stable/releases/",
		"Source": "https://github.com/django/django/",
		"Tracker": "https://code.djangoproject.com/"
	}`)

	var urls ProjectURLs
	require.NoError(t, json.Unmarshal(data, &urls))
	require.Len(t, urls, 6)

	labels := make([]string, len(urls))
	for i, u := range urls {
		labels[i] = u.Label
	}
	assert.Equal(t, []string{"Documentation", "Funding", "Homepage", "Release notes", "Source", "Tracker"}, labels)
	assert.Equal(t, ProjectURL{Label: "Source", URL: "https://github.com/django/django/"}, urls[4])
}

func TestProjectURLs_NonStringValues(t *testing.T) {
	var urls ProjectURLs
	require.NoError(t, json.Unmarshal([]byte(`{"Homepage": null, "Source": "https://github.com/a/b"}`), &urls))

	assert.Equal(t, ProjectURLs{{Label: "Homepage"}, {Label: "Source", URL: "https://github.com/a/b"}}, urls)
}

func TestProjectURLs_RejectsNonObject(t *testing.T) {
	var urls ProjectURLs
	assert.Error(t, json.Unmarshal([]byte(`["https://github.com/a/b"]`), &urls))
}

func TestProjectURLs_MarshalKeepsOrder(t *testing.T) {
	urls := ProjectURLs{
		{Label: "Tracker", URL: "https://example.org/issues"},
		{Label: "Source", URL: "https://github.com/org/project"},
	}

	data, err := json.Marshal(urls)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Tracker":"https://example.org/issues","Source":"https://github.com/org/project"}`, string(data))
	assert.Equal(t, `{"Tracker":"https://example.org/issues","Source":"https://github.com/org/project"}`, string(data))
}
