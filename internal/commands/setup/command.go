package setup

import (
	"github.com/kasa-tools/kasa-cli/internal/auth"
	"github.com/kasa-tools/kasa-cli/internal/cli"
	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	"github.com/kasa-tools/kasa-cli/internal/cloud/kasa"
	"github.com/kasa-tools/kasa-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `setup` command
type Command struct {
	inputs     inputs
	kasaClient kasa.Client
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Username, cli.FlagUsername, cli.FlagUsernameShort, "", cli.FlagUsernameUsage)
	fs.StringVarP(&cmd.inputs.Password, cli.FlagPassword, cli.FlagPasswordShort, "", cli.FlagPasswordUsage)
	fs.BoolVarP(&cmd.inputs.Overwrite, flagOverwrite, flagOverwriteShort, false, flagOverwriteUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Setup is the command setup
func (cmd *Command) Setup(profile *user.Profile, ui terminal.UI) error {
	cmd.kasaClient = kasa.NewClient(profile.BaseURL())
	return nil
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI) error {
	if profile.Exists() && !cmd.inputs.Overwrite {
		return cli.NewErr("a settings file already exists at " + profile.Path() +
			"; re-run setup with --overwrite to replace it")
	}

	creds := auth.Credentials{Username: cmd.inputs.Username, Password: cmd.inputs.Password}

	session, sessionErr := cmd.kasaClient.Authenticate(creds)
	if sessionErr != nil {
		return sessionErr
	}

	profile.SetCredentials(creds)
	profile.SetSession(auth.Session{Token: session.Token})
	return profile.Save()
}

// Feedback is the command feedback
func (cmd *Command) Feedback(profile *user.Profile, ui terminal.UI) error {
	return ui.Print(terminal.NewTextLog("Successfully saved your credentials to %s", profile.Path()))
}
