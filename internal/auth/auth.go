package auth

import (
	"strings"
)

// Service provides the credentials and cached session for cloud calls
// and controls how a refreshed session is persisted.
//
// Two implementations exist: the CLI profile, whose sessions survive on disk
// between invocations, and the ephemeral service below for one-off
// credentials supplied via command-line flags.
type Service interface {
	Credentials() Credentials
	Session() Session
	SetSession(session Session)
	ClearSession()
	Save() error
}

// Credentials are the cloud account credentials
type Credentials struct {
	Username string
	Password string
}

// RedactedPassword returns the user's password with sensitive information redacted
func (creds Credentials) RedactedPassword() string {
	return strings.Repeat("*", len(creds.Password))
}

// Session is a cloud session
type Session struct {
	Token string
}

// NewEphemeralService creates an auth service for explicit one-off
// credentials. It starts with no session, so the first cloud call always
// performs a login, and Save never writes anything to disk.
func NewEphemeralService(username, password string) Service {
	return &ephemeralService{creds: Credentials{username, password}}
}

type ephemeralService struct {
	creds   Credentials
	session Session
}

func (svc *ephemeralService) Credentials() Credentials { return svc.creds }

func (svc *ephemeralService) Session() Session { return svc.session }

func (svc *ephemeralService) SetSession(session Session) { svc.session = session }

func (svc *ephemeralService) ClearSession() { svc.session = Session{} }

func (svc *ephemeralService) Save() error { return nil }
