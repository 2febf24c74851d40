package logout

import (
	"bytes"
	"testing"

	"github.com/kasa-tools/kasa-cli/internal/auth"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/assert"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/mock"
)

func TestLogoutHandler(t *testing.T) {
	t.Run("with no settings file should say no user is set up", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "logout_test")
		defer teardown()

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui))

		assert.Equal(t, "01:23:45 UTC INFO  No user is currently set up\n", out.String())
	})

	t.Run("when confirmed should drop the session and keep the credentials", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "logout_test")
		defer teardown()

		profile.SetCredentials(auth.Credentials{Username: "user@example.com", Password: "password"})
		profile.SetSession(auth.Session{Token: "cachedToken"})
		assert.Nil(t, profile.Save())

		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, out)

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui))

		assert.Equal(t, "01:23:45 UTC INFO  Successfully logged out\n", out.String())
		assert.Equal(t, auth.Session{}, profile.Session())
		assert.Equal(t, auth.Credentials{Username: "user@example.com", Password: "password"}, profile.Credentials())
	})

	t.Run("when declined should leave the session alone", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "logout_test")
		defer teardown()

		profile.SetCredentials(auth.Credentials{Username: "user@example.com", Password: "password"})
		profile.SetSession(auth.Session{Token: "cachedToken"})
		assert.Nil(t, profile.Save())

		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("Discard the session for user@example.com?")
			console.SendLine("n")
			console.ExpectEOF()
		}()

		cmd := &Command{}
		handlerErr := cmd.Handler(profile, ui)

		console.Tty().Close()
		<-doneCh

		assert.Nil(t, handlerErr)
		assert.Equal(t, auth.Session{Token: "cachedToken"}, profile.Session())
	})
}
