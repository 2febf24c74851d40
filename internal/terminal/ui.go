package terminal

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	Ask(answers interface{}, questions ...*survey.Question) error
	AskOne(answer interface{}, prompt survey.Prompt) error
	Confirm(format string, args ...interface{}) (bool, error)
	Print(logs ...Log) error
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
	OutputTarget  string
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	noColor := config.DisableColors
	if config.OutputFormat == OutputFormatJSON {
		noColor = true
	}
	color.NoColor = noColor

	return &ui{
		config: config,
		in:     in,
		out:    out,
		err:    err,
	}
}

type ui struct {
	config UIConfig
	in     io.Reader
	out    io.Writer
	err    io.Writer
}

func (ui *ui) Ask(answers interface{}, questions ...*survey.Question) error {
	stdio := ui.stdio()
	return survey.Ask(questions, answers, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
}

func (ui *ui) AskOne(answer interface{}, prompt survey.Prompt) error {
	stdio := ui.stdio()
	return survey.AskOne(prompt, answer, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
}

func (ui *ui) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	var proceed bool
	if err := ui.AskOne(&proceed, &survey.Confirm{Message: fmt.Sprintf(format, args...)}); err != nil {
		return false, err
	}
	return proceed, nil
}

func (ui *ui) Print(logs ...Log) error {
	for _, log := range logs {
		output, outputErr := log.Print(ui.config.OutputFormat)
		if outputErr != nil {
			return outputErr
		}

		var writer io.Writer
		switch log.Level {
		case LogLevelError:
			writer = ui.err
		default:
			writer = ui.out
		}

		if _, err := fmt.Fprintln(writer, output); err != nil {
			return err
		}
	}
	return nil
}

func (ui *ui) stdio() terminal.Stdio {
	in, inOK := ui.in.(terminal.FileReader)
	if !inOK {
		in = noopFdReader{ui.in}
	}
	out, outOK := ui.out.(terminal.FileWriter)
	if !outOK {
		out = noopFdWriter{ui.out}
	}
	return terminal.Stdio{
		In:  in,
		Out: out,
		Err: ui.err,
	}
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr {
	return 0
}

type noopFdWriter struct {
	io.Writer
}

func (w noopFdWriter) Fd() uintptr {
	return 0
}
