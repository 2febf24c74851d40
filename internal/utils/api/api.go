package api

import (
	"fmt"
	"io"
	"net/http"
)

// set of supported api header keys
const (
	HeaderContentType = "Content-Type"
)

// set of supported api media types
const (
	MediaTypeJSON = "application/json"
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body        io.Reader
	ContentType string
	Query       map[string]string
}

// IncludeQuery includes the provided query params on the request
func IncludeQuery(req *http.Request, query map[string]string) {
	q := req.URL.Query()
	for key, value := range query {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
}

// ErrUnexpectedStatusCode is an error for an unexpected status code
type ErrUnexpectedStatusCode struct {
	Action     string
	StatusCode int
}

func (err ErrUnexpectedStatusCode) Error() string {
	return fmt.Sprintf("failed to %s: unexpected status code %d", err.Action, err.StatusCode)
}
