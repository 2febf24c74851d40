package cli

import (
	"github.com/kasa-tools/kasa-cli/internal/auth"
	"github.com/kasa-tools/kasa-cli/internal/cli/user"

	"github.com/spf13/pflag"
)

// set of supported credential flags
const (
	FlagUsername      = "username"
	FlagUsernameShort = "u"
	FlagUsernameUsage = "TP-Link Kasa username"

	FlagPassword      = "password"
	FlagPasswordShort = "p"
	FlagPasswordUsage = "TP-Link Kasa password"
)

// ErrConflictingCredentials occurs when only one of the credential flags is supplied
var ErrConflictingCredentials = NewErr("must supply both a username and a password, or neither")

// errMissingProfile occurs when no credentials are available at all
type errMissingProfile struct {
	path string
}

func (err errMissingProfile) Error() string {
	return "no credentials found at " + err.path + "; run setup or supply a username and password"
}

func (err errMissingProfile) SuggestedCommands() []interface{} {
	return []interface{}{Name + " setup"}
}

// AuthInputs are the credential inputs shared by the authenticated commands
//
// Explicit flag credentials take precedence over the stored record and are
// never persisted; with no flags set, the stored record must exist.
type AuthInputs struct {
	Username string
	Password string
}

// Flags registers the credential input flags to the provided flag set
func (i *AuthInputs) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.Username, FlagUsername, FlagUsernameShort, "", FlagUsernameUsage)
	fs.StringVarP(&i.Password, FlagPassword, FlagPasswordShort, "", FlagPasswordUsage)
}

// AuthService resolves the inputs into the auth service to issue cloud
// requests with: an ephemeral service for explicit flag credentials, or the
// profile itself for the stored record
func (i AuthInputs) AuthService(profile *user.Profile) (auth.Service, error) {
	switch {
	case i.Username != "" && i.Password != "":
		return auth.NewEphemeralService(i.Username, i.Password), nil
	case i.Username != "" || i.Password != "":
		return nil, ErrConflictingCredentials
	}

	if !profile.Exists() {
		return nil, errMissingProfile{profile.Path()}
	}
	return profile, nil
}
