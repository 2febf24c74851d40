package kasa

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/kasa-tools/kasa-cli/internal/auth"
	"github.com/kasa-tools/kasa-cli/internal/utils/api"
)

// Client is a Kasa cloud client
type Client interface {
	Authenticate(creds auth.Credentials) (Session, error)

	Devices() ([]Device, error)
	DeviceData(deviceID string) (string, error)
}

// NewClient creates a new Kasa cloud client
func NewClient(baseURL string) Client {
	return &client{baseURL, noopAuth{}}
}

// NewAuthClient creates a new Kasa cloud client capable of managing the user's session
func NewAuthClient(baseURL string, authService auth.Service) Client {
	return &client{baseURL, authService}
}

type client struct {
	baseURL     string
	authService auth.Service
}

type payload struct {
	Method string      `json:"method"`
	Params interface{} `json:"params,omitempty"`
}

// do issues an authenticated cloud request and returns the envelope's result.
//
// It is a two-state machine: with a cached token it issues the request
// directly, without one it mints a token first. A token-expired response
// causes exactly one re-authentication followed by one retry; a second
// expiry report on a freshly minted token is fatal.
func (c *client) do(body payload) (json.RawMessage, error) {
	token := c.authService.Session().Token

	refreshed := false
	if token == "" {
		session, err := c.refreshAuth()
		if err != nil {
			return nil, err
		}
		token, refreshed = session.Token, true
	}

	for {
		result, err := c.post(body, token)
		if err == nil {
			return result, nil
		}

		serverError, ok := err.(ServerError)
		if !ok || serverError.Code != errCodeTokenExpired {
			return nil, err
		}

		if refreshed {
			return nil, ErrFreshTokenRejected
		}

		session, refreshErr := c.refreshAuth()
		if refreshErr != nil {
			return nil, refreshErr
		}
		token, refreshed = session.Token, true
	}
}

// refreshAuth mints a new session with the auth service's credentials and
// hands the session back to the service for safekeeping. For profile-backed
// services this rotates the token in the credential record; for ephemeral
// ones Save is a no-op and nothing touches the disk.
func (c *client) refreshAuth() (Session, error) {
	session, err := c.Authenticate(c.authService.Credentials())
	if err != nil {
		return Session{}, err
	}

	c.authService.SetSession(auth.Session{Token: session.Token})
	if err := c.authService.Save(); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (c *client) post(body payload, token string) (json.RawMessage, error) {
	data, marshalErr := json.Marshal(body)
	if marshalErr != nil {
		return nil, marshalErr
	}

	options := api.RequestOptions{
		Body:        bytes.NewReader(data),
		ContentType: api.MediaTypeJSON,
	}
	if token != "" {
		options.Query = map[string]string{"token": token}
	}

	req, reqErr := http.NewRequest(http.MethodPost, c.baseURL+"/", options.Body)
	if reqErr != nil {
		return nil, reqErr
	}

	api.IncludeQuery(req, options.Query)
	req.Header.Set(api.HeaderContentType, options.ContentType)

	httpClient := &http.Client{}

	res, resErr := httpClient.Do(req)
	if resErr != nil {
		return nil, resErr
	}

	return parseResponse(res)
}

type noopAuth struct{}

func (na noopAuth) Credentials() auth.Credentials { return auth.Credentials{} }

func (na noopAuth) Session() auth.Session { return auth.Session{} }

func (na noopAuth) SetSession(session auth.Session) {}

func (na noopAuth) ClearSession() {}

func (na noopAuth) Save() error { return nil }
