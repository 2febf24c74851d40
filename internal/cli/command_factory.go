package cli

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	"github.com/kasa-tools/kasa-cli/internal/terminal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile   *user.Profile
	ui        terminal.UI
	uiConfig  terminal.UIConfig
	inReader  *os.File
	outWriter *os.File
	errWriter *os.File
	errLogger *log.Logger
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	profile, profileErr := user.NewDefaultProfile()
	if profileErr != nil {
		return nil, profileErr
	}

	return &CommandFactory{
		profile:   profile,
		errLogger: log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.LUTC|log.Lmsgprefix),
	}, nil
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command != nil {

		if command, ok := command.Command.(CommandFlags); ok {
			fs := cmd.Flags()
			fs.SortFlags = false // ensures command flags are added unsorted
			command.Flags(fs)
		}

		cmd.PersistentPreRun = func(c *cobra.Command, a []string) {
			factory.ensureUI()
			c.SetIn(factory.inReader)
			c.SetOut(factory.outWriter)
			c.SetErr(factory.errWriter)

			if err := factory.profile.ResolveFlags(); err != nil {
				factory.ui.Print(terminal.NewErrorLog(err))
				os.Exit(1)
			}

			factory.checkForNewVersion(http.DefaultClient)
		}

		if command, ok := command.Command.(CommandInputs); ok {
			cmd.PreRunE = func(c *cobra.Command, a []string) error {
				if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
					return fmt.Errorf("%s setup failed: %w", display, errDisableUsage{err})
				}
				return nil
			}
		}

		cmd.RunE = func(c *cobra.Command, a []string) error {
			if preparer, ok := command.Command.(CommandPreparer); ok {
				if err := preparer.Setup(factory.profile, factory.ui); err != nil {
					return fmt.Errorf("%s setup failed: %w", display, errDisableUsage{err})
				}
			}

			if err := command.Command.Handler(factory.profile, factory.ui); err != nil {
				return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
			}

			if responder, ok := command.Command.(CommandResponder); ok {
				if err := responder.Feedback(factory.profile, factory.ui); err != nil {
					return fmt.Errorf("%s feedback failed: %w", display, errDisableUsage{err})
				}
			}
			return nil
		}
	}

	return &cmd
}

// Run executes the command
func (factory *CommandFactory) Run(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		handleUsage(cmd, err)

		if factory.ui == nil {
			factory.errLogger.Fatal(err)
		}

		logs := []terminal.Log{terminal.NewErrorLog(err)}
		for e := err; e != nil; e = errors.Unwrap(e) {
			if suggester, ok := e.(CommandSuggester); ok {
				logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, suggester.SuggestedCommands()...))
			}
			if referrer, ok := e.(LinkReferrer); ok {
				logs = append(logs, terminal.NewFollowupLog(terminal.MsgReferenceLinks, referrer.ReferenceLinks()...))
			}
		}

		factory.ui.Print(logs...)
		os.Exit(1)
	}
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, user.FlagProfile, user.DefaultProfile, user.FlagProfileUsage)
	fs.StringVarP(&factory.profile.Flags.ConfigPath, user.FlagConfig, user.FlagConfigShort, "", user.FlagConfigUsage)

	// ui flags
	fs.StringVar(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)

	// hidden flags
	fs.StringVar(&factory.profile.Flags.BaseURL, user.FlagBaseURL, "", user.FlagBaseURLUsage)
	fs.MarkHidden(user.FlagBaseURL)
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal(fmt.Errorf("failed to open target file: %w", err))
		}
		factory.outWriter = f
	}
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.uiConfig.OutputTarget != "" && factory.outWriter != nil {
		factory.outWriter.Close()
	}
}

// checkForNewVersion prints a warning if a newer CLI build is published,
// checking at most once per day
func (factory *CommandFactory) checkForNewVersion(client VersionManifestClient) {
	if time.Since(factory.profile.LastVersionCheck()) < 24*time.Hour {
		return
	}

	newVersion, err := checkVersion(client)
	if err != nil || newVersion == "" {
		return // version checks never block a command
	}

	factory.ui.Print(terminal.NewWarningLog(newVersion))

	factory.profile.SetLastVersionCheck(time.Now())
	if factory.profile.Exists() {
		// creating the record is setup's job; only an existing one is touched
		if err := factory.profile.Save(); err != nil {
			factory.ui.Print(terminal.NewDebugLog("failed to save the version check time: %s", err))
		}
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func handleUsage(cmd *cobra.Command, err error) {
	if _, ok := errors.Unwrap(err).(DisableUsage); ok {
		return
	}
	fmt.Println(cmd.UsageString())
}
