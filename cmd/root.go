package cmd

import (
	"fmt"
	"log"

	"github.com/kasa-tools/kasa-cli/internal/cli"
	"github.com/kasa-tools/kasa-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to manage the TP-Link Kasa devices on your cloud account",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}
	defer factory.Close()

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Setup))
	cmd.AddCommand(factory.Build(commands.List))
	cmd.AddCommand(factory.Build(commands.GetData))
	cmd.AddCommand(factory.Build(commands.Whoami))
	cmd.AddCommand(factory.Build(commands.Logout))

	factory.Run(cmd)
}
