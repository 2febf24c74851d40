package user_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/kasa-tools/kasa-cli/internal/auth"
	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	u "github.com/kasa-tools/kasa-cli/internal/utils/test"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/assert"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/mock"

	"github.com/spf13/viper"
)

func TestProfile(t *testing.T) {
	t.Run("should load successfully when no credential record exists yet", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		assert.Nil(t, profile.Load())
		assert.False(t, profile.Exists(), "expected no credential record on disk")
	})

	t.Run("should save and load the credential record", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		profile.SetCredentials(auth.Credentials{Username: "user@example.com", Password: "password"})
		profile.SetSession(auth.Session{Token: "cachedToken"})
		assert.Nil(t, profile.Save())
		assert.True(t, profile.Exists(), "expected the credential record to be written")

		viper.Reset()
		assert.Nil(t, profile.Load())

		assert.Equal(t, auth.Credentials{Username: "user@example.com", Password: "password"}, profile.Credentials())
		assert.Equal(t, auth.Session{Token: "cachedToken"}, profile.Session())
	})

	t.Run("should clear the session without touching the credentials", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		profile.SetCredentials(auth.Credentials{Username: "user@example.com", Password: "password"})
		profile.SetSession(auth.Session{Token: "cachedToken"})

		profile.ClearSession()

		assert.Equal(t, auth.Session{}, profile.Session())
		assert.Equal(t, auth.Credentials{Username: "user@example.com", Password: "password"}, profile.Credentials())
	})

	t.Run("should honor the config path override", func(t *testing.T) {
		tmpDir, teardownTmpDir, tmpDirErr := u.NewTempDir("profile_test")
		assert.Nil(t, tmpDirErr)
		defer teardownTmpDir()

		_, teardownHomeDir := u.SetupHomeDir(tmpDir)
		defer teardownHomeDir()

		configPath := filepath.Join(tmpDir, "override.yaml")
		assert.Nil(t, ioutil.WriteFile(configPath, []byte(`override:
  username: user@example.com
  password: password
  token: overrideToken
`), 0600))

		profile, profileErr := user.NewProfile("override")
		assert.Nil(t, profileErr)
		profile.Flags.ConfigPath = configPath

		assert.Equal(t, configPath, profile.Path())

		viper.Reset()
		assert.Nil(t, profile.Load())
		assert.Equal(t, auth.Session{Token: "overrideToken"}, profile.Session())
	})

	t.Run("should load successfully when the config path override does not exist", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		profile.Flags.ConfigPath = filepath.Join(profile.Dir(), "absent.yaml")

		viper.Reset()
		assert.Nil(t, profile.Load())
	})
}

func TestProfileResolveFlags(t *testing.T) {
	t.Run("should fall back to the default base url", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		assert.Nil(t, profile.ResolveFlags())
		assert.Equal(t, user.DefaultBaseURL, profile.Flags.BaseURL)
		assert.Equal(t, user.DefaultBaseURL, profile.BaseURL())
	})

	t.Run("should prefer the flag base url over the stored one", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		profile.SetBaseURL("https://stored.example.com")
		profile.Flags.BaseURL = "https://flag.example.com"

		assert.Nil(t, profile.ResolveFlags())
		assert.Equal(t, "https://flag.example.com", profile.BaseURL())
	})

	t.Run("should prefer the stored base url over the default", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		profile.SetBaseURL("https://stored.example.com")

		assert.Nil(t, profile.ResolveFlags())
		assert.Equal(t, "https://stored.example.com", profile.Flags.BaseURL)
	})
}

func TestProfileLastVersionCheck(t *testing.T) {
	t.Run("should round trip the last version check time", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		now := time.Date(2021, 2, 3, 4, 5, 6, 0, time.UTC)
		profile.SetLastVersionCheck(now)
		assert.Equal(t, now, profile.LastVersionCheck())
	})

	t.Run("should treat an unparseable value as the zero time", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "profile_test")
		defer teardown()

		profile.SetString("last_version_check", "eggcorn")
		assert.Equal(t, time.Time{}, profile.LastVersionCheck())
	})
}
