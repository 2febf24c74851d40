package getdata

import (
	"github.com/kasa-tools/kasa-cli/internal/cli"
	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	"github.com/kasa-tools/kasa-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	flagDeviceID      = "device-id"
	flagDeviceIDShort = "d"
	flagDeviceIDUsage = "device id from the 'list' command"
)

type inputs struct {
	cli.AuthInputs
	DeviceID string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.DeviceID == "" {
		if err := ui.AskOne(&i.DeviceID, &survey.Input{Message: "Device ID"}); err != nil {
			return err
		}
	}
	return nil
}
