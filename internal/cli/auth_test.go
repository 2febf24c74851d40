package cli_test

import (
	"strings"
	"testing"

	"github.com/kasa-tools/kasa-cli/internal/auth"
	"github.com/kasa-tools/kasa-cli/internal/cli"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/assert"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/mock"
)

func TestAuthInputs(t *testing.T) {
	t.Run("with both credential flags should resolve to an ephemeral auth service", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "auth_inputs_test")
		defer teardown()

		inputs := cli.AuthInputs{Username: "user@example.com", Password: "password"}

		svc, err := inputs.AuthService(profile)
		assert.Nil(t, err)
		assert.Equal(t, auth.Credentials{Username: "user@example.com", Password: "password"}, svc.Credentials())

		// the ephemeral service never touches the credential record
		svc.SetSession(auth.Session{Token: "freshToken"})
		assert.Nil(t, svc.Save())
		assert.False(t, profile.Exists(), "expected no credential record to be written")
	})

	t.Run("with only one credential flag should fail", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "auth_inputs_test")
		defer teardown()

		for _, inputs := range []cli.AuthInputs{
			{Username: "user@example.com"},
			{Password: "password"},
		} {
			_, err := inputs.AuthService(profile)
			assert.Equal(t, cli.ErrConflictingCredentials, err)
		}
	})

	t.Run("with no credential flags should resolve to the stored profile", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "auth_inputs_test")
		defer teardown()

		profile.SetCredentials(auth.Credentials{Username: "user@example.com", Password: "password"})
		assert.Nil(t, profile.Save())

		svc, err := cli.AuthInputs{}.AuthService(profile)
		assert.Nil(t, err)
		assert.Equal(t, auth.Credentials{Username: "user@example.com", Password: "password"}, svc.Credentials())
	})

	t.Run("with no credential flags and no stored record should fail and suggest setup", func(t *testing.T) {
		profile, teardown := mock.NewProfileFromTmpDir(t, "auth_inputs_test")
		defer teardown()

		_, err := cli.AuthInputs{}.AuthService(profile)
		assert.NotNil(t, err)
		assert.True(t, strings.Contains(err.Error(), "no credentials found at"), "unexpected error: %s", err)

		suggester, ok := err.(cli.CommandSuggester)
		assert.True(t, ok, "expected the error to suggest commands, got %T", err)
		assert.Equal(t, []interface{}{"kasa-cli setup"}, suggester.SuggestedCommands())
	})
}
