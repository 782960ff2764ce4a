package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		input     string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"https://github.com/org/project/", "org", "project", false},
		{"https://github.com/django/django", "django", "django", false},
		{"http://github.com/django-guardian/django_guardian/", "django-guardian", "django_guardian", false},
		{"https://github.com/org/", "", "", true},
		{"https://github.com/org/project/tree/1.0", "", "", true},
		{"https://github.com/org/pro.ject/", "", "", true},
		{"://bad", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			owner, repo, err := ParseRepoURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestValidateOwnerAndRepo(t *testing.T) {
	assert.NoError(t, ValidateOwner("pypa"))
	assert.Error(t, ValidateOwner(""))
	assert.Error(t, ValidateOwner("bad owner"))

	assert.NoError(t, ValidateRepo("packaging"))
	assert.Error(t, ValidateRepo(""))
	assert.Error(t, ValidateRepo("a/b"))
}
