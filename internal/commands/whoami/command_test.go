package whoami

import (
	"testing"

	"github.com/kasa-tools/kasa-cli/internal/auth"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/assert"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/mock"
)

func TestWhoamiHandler(t *testing.T) {
	t.Run("with no user set up should say so", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "whoami_test")
		defer teardown()

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui))

		assert.Equal(t, "01:23:45 UTC INFO  No user is currently set up\n", out.String())
	})

	t.Run("with credentials but no session should say the user is logged out", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "whoami_test")
		defer teardown()

		profile.SetCredentials(auth.Credentials{Username: "user@example.com", Password: "password"})

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui))

		assert.Equal(t, "01:23:45 UTC INFO  The user, user@example.com, has no cached session\n", out.String())
	})

	t.Run("with a session should print the user with a redacted password", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "whoami_test")
		defer teardown()

		profile.SetCredentials(auth.Credentials{Username: "user@example.com", Password: "password"})
		profile.SetSession(auth.Session{Token: "cachedToken"})

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui))

		assert.Equal(t, "01:23:45 UTC INFO  Currently set up user: user@example.com (********), with a cached session\n", out.String())
	})
}
