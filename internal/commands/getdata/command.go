package getdata

import (
	"github.com/kasa-tools/kasa-cli/internal/cli"
	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	"github.com/kasa-tools/kasa-cli/internal/cloud/kasa"
	"github.com/kasa-tools/kasa-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `get-data` command
type Command struct {
	inputs     inputs
	kasaClient kasa.Client
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	cmd.inputs.AuthInputs.Flags(fs)
	fs.StringVarP(&cmd.inputs.DeviceID, flagDeviceID, flagDeviceIDShort, "", flagDeviceIDUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Setup is the command setup
func (cmd *Command) Setup(profile *user.Profile, ui terminal.UI) error {
	authService, err := cmd.inputs.AuthService(profile)
	if err != nil {
		return err
	}

	cmd.kasaClient = kasa.NewAuthClient(profile.BaseURL(), authService)
	return nil
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI) error {
	data, dataErr := cmd.kasaClient.DeviceData(cmd.inputs.DeviceID)
	if dataErr != nil {
		return dataErr
	}

	return ui.Print(terminal.NewTextLog("%s", data))
}
