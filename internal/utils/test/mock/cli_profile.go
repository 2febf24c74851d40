package mock

import (
	"testing"

	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	u "github.com/kasa-tools/kasa-cli/internal/utils/test"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/assert"
)

// NewProfile returns a new CLI profile with a random name
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	profile, err := user.NewProfile(u.RandomName())
	assert.Nil(t, err)
	return profile
}

// NewProfileFromTmpDir returns a new CLI profile with a random name
// rooted in a temporary $HOME, along with the associated cleanup function
func NewProfileFromTmpDir(t *testing.T, name string) (*user.Profile, func()) {
	t.Helper()

	tmpDir, teardown, err := u.NewTempDir(name)
	assert.Nil(t, err)

	_, resetHomeDir := u.SetupHomeDir(tmpDir)

	profile := NewProfile(t)

	return profile,
		func() {
			resetHomeDir()
			teardown()
		}
}
