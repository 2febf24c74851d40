package whoami

import (
	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	"github.com/kasa-tools/kasa-cli/internal/terminal"
)

// Command is the `whoami` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI) error {
	creds := profile.Credentials()
	session := profile.Session()

	if creds.Username == "" {
		return ui.Print(terminal.NewTextLog("No user is currently set up"))
	}

	if session.Token == "" {
		return ui.Print(terminal.NewTextLog("The user, %s, has no cached session", creds.Username))
	}

	return ui.Print(terminal.NewTextLog("Currently set up user: %s (%s), with a cached session", creds.Username, creds.RedactedPassword()))
}
