package kasa

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kasa-tools/kasa-cli/internal/utils/api"
)

const (
	// errCodeTokenExpired is the error code the cloud returns
	// when the request's session token is no longer valid
	errCodeTokenExpired = -20651
)

// ErrFreshTokenRejected indicates the cloud reported a token expired
// immediately after issuing it; retrying would loop forever
var ErrFreshTokenRejected = errors.New("session token was reported expired immediately after login")

// ServerError is a Kasa cloud error
type ServerError struct {
	Code int    `json:"error_code"`
	Body string `json:"-"`
}

func (se ServerError) Error() string {
	return fmt.Sprintf("cloud request failed with error_code %d (response = %s)", se.Code, se.Body)
}

type response struct {
	ErrorCode int             `json:"error_code"`
	Result    json.RawMessage `json:"result"`
}

// parseResponse reads a cloud response envelope and returns its result,
// or a ServerError carrying the raw body for any non-zero error code
func parseResponse(res *http.Response) (json.RawMessage, error) {
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, api.ErrUnexpectedStatusCode{Action: "reach the Kasa cloud", StatusCode: res.StatusCode}
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return nil, err
	}

	var envelope response
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode cloud response: %w", err)
	}

	if envelope.ErrorCode != 0 {
		return nil, ServerError{envelope.ErrorCode, buf.String()}
	}
	return envelope.Result, nil
}
