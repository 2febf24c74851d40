package list

import (
	"github.com/kasa-tools/kasa-cli/internal/cli"
	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	"github.com/kasa-tools/kasa-cli/internal/cloud/kasa"
	"github.com/kasa-tools/kasa-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `list` command
type Command struct {
	inputs     cli.AuthInputs
	kasaClient kasa.Client
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
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
	devices, devicesErr := cmd.kasaClient.Devices()
	if devicesErr != nil {
		return devicesErr
	}

	if len(devices) == 0 {
		return ui.Print(terminal.NewTextLog("No devices are registered to this account"))
	}

	logs := make([]terminal.Log, 0, len(devices))
	for _, device := range devices {
		logs = append(logs, terminal.NewDocLog(device, "%s = %s", device.Alias, device.DeviceID))
	}
	return ui.Print(logs...)
}
