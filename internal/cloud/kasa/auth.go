package kasa

import (
	"encoding/json"
	"fmt"

	"github.com/kasa-tools/kasa-cli/internal/auth"
)

const (
	methodLogin = "login"
)

type authPayload struct {
	AppType      string `json:"appType"`
	Username     string `json:"cloudUserName"`
	Password     string `json:"cloudPassword"`
	TerminalUUID string `json:"terminalUUID"`
}

// Session is a Kasa cloud session
type Session struct {
	Token string `json:"token"`
}

func (c *client) Authenticate(creds auth.Credentials) (Session, error) {
	result, err := c.post(payload{
		Method: methodLogin,
		Params: authPayload{Username: creds.Username, Password: creds.Password},
	}, "")
	if err != nil {
		return Session{}, err
	}

	var session Session
	if err := json.Unmarshal(result, &session); err != nil {
		return Session{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	if session.Token == "" {
		return Session{}, fmt.Errorf("login response carried no token")
	}
	return session, nil
}
