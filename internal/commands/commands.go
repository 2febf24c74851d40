package commands

import (
	"github.com/kasa-tools/kasa-cli/internal/cli"
	"github.com/kasa-tools/kasa-cli/internal/commands/getdata"
	"github.com/kasa-tools/kasa-cli/internal/commands/list"
	"github.com/kasa-tools/kasa-cli/internal/commands/logout"
	"github.com/kasa-tools/kasa-cli/internal/commands/setup"
	"github.com/kasa-tools/kasa-cli/internal/commands/whoami"
)

// set of commands
var (
	Setup = cli.CommandDefinition{
		Command:     &setup.Command{},
		Use:         "setup",
		Description: "Store your TP-Link Kasa credentials in a settings file",
		Help: `Captures your TP-Link Kasa username and password, verifies them against the
cloud, and saves them together with the session token so later commands can
skip logging in. Fails if a settings file already exists unless --overwrite
is set.`,
	}
	List = cli.CommandDefinition{
		Command:     &list.Command{},
		Use:         "list",
		Aliases:     []string{"ls"},
		Description: "List the TP-Link Kasa devices registered to your account",
		Help:        "Prints one 'alias = deviceId' line per registered device",
	}
	GetData = cli.CommandDefinition{
		Command:     &getdata.Command{},
		Use:         "get-data",
		Display:     "get-data",
		Description: "Get system info and real-time meter data from a TP-Link Kasa device",
		Help:        "Prints the raw telemetry payload for the device id from the 'list' command",
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display information about the current user",
		Help:        "whoami",
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Discard the current session token",
		Help:        "logout",
	}
)
