package setup

import (
	"testing"

	"github.com/kasa-tools/kasa-cli/internal/auth"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/assert"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/mock"
)

func TestSetupInputs(t *testing.T) {
	t.Run("with both flags set should prompt for nothing", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "setup_inputs_test")
		defer teardown()

		i := inputs{Username: "user@example.com", Password: "password"}
		assert.Nil(t, i.Resolve(profile, nil))
	})

	t.Run("with no flags set should prompt for the username and password", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "setup_inputs_test")
		defer teardown()

		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("Enter your TP-Link Kasa username")
			console.SendLine("user@example.com")
			console.ExpectString("Enter your TP-Link Kasa password")
			console.SendLine("password")
			console.ExpectEOF()
		}()

		i := inputs{}
		resolveErr := i.Resolve(profile, ui)

		console.Tty().Close()
		<-doneCh

		assert.Nil(t, resolveErr)
		assert.Equal(t, "user@example.com", i.Username)
		assert.Equal(t, "password", i.Password)
	})

	t.Run("should offer the stored username as the prompt default", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "setup_inputs_test")
		defer teardown()

		profile.SetCredentials(auth.Credentials{Username: "stored@example.com", Password: "password"})

		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			// the rendered default ("(stored@example.com)") is ANSI-interleaved,
			// so only the message prefix is matched here
			console.ExpectString("Enter your TP-Link Kasa username")
			console.SendLine("")
			console.ExpectString("Enter your TP-Link Kasa password")
			console.SendLine("password")
			console.ExpectEOF()
		}()

		i := inputs{}
		resolveErr := i.Resolve(profile, ui)

		console.Tty().Close()
		<-doneCh

		assert.Nil(t, resolveErr)
		assert.Equal(t, "stored@example.com", i.Username)
	})
}
