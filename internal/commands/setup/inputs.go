package setup

import (
	"github.com/kasa-tools/kasa-cli/internal/cli/user"
	"github.com/kasa-tools/kasa-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldUsername = "username"
	inputFieldPassword = "password"
)

type inputs struct {
	Username  string
	Password  string
	Overwrite bool
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Username == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldUsername,
			Prompt: &survey.Input{Message: "Enter your TP-Link Kasa username", Default: profile.Credentials().Username},
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldPassword,
			Prompt: &survey.Password{Message: "Enter your TP-Link Kasa password"},
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
