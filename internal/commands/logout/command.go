package logout

import (
	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	"github.com/kasa-tools/kasa-cli/internal/terminal"
)

// Command is the `logout` command
type Command struct{}

// Handler is the command handler
// The session token is dropped from the settings file; the credentials stay
// so the next command can log back in without prompting
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI) error {
	if !profile.Exists() {
		return ui.Print(terminal.NewTextLog("No user is currently set up"))
	}

	proceed, err := ui.Confirm("Discard the session for %s?", profile.Credentials().Username)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	profile.ClearSession()
	if err := profile.Save(); err != nil {
		return err
	}

	return ui.Print(terminal.NewTextLog("Successfully logged out"))
}
