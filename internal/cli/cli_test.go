package cli

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	"github.com/kasa-tools/kasa-cli/internal/utils/test/assert"
)

type manifestClientFn func(url string) (*http.Response, error)

func (fn manifestClientFn) Get(url string) (*http.Response, error) {
	return fn(url)
}

func manifestResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       ioutil.NopCloser(strings.NewReader(body)),
	}
}

func TestCheckVersion(t *testing.T) {
	manifest := fmt.Sprintf(
		`{"version":"0.1.0","info":{%q:{"url":"https://s3.amazonaws.com/kasa-cli/versions/0.1.0/%s"}}}`,
		osArch, osArch,
	)

	t.Run("with a newer version available should return the upgrade message", func(t *testing.T) {
		client := manifestClientFn(func(url string) (*http.Response, error) {
			return manifestResponse(http.StatusOK, manifest), nil
		})

		msg, err := checkVersion(client)
		assert.Nil(t, err)
		assert.Equal(t,
			fmt.Sprintf("New version (v0.1.0) of CLI available: https://s3.amazonaws.com/kasa-cli/versions/0.1.0/%s", osArch),
			msg,
		)
	})

	t.Run("with the current version up to date should return nothing", func(t *testing.T) {
		client := manifestClientFn(func(url string) (*http.Response, error) {
			return manifestResponse(http.StatusOK, fmt.Sprintf(`{"version":%q,"info":{}}`, Version)), nil
		})

		msg, err := checkVersion(client)
		assert.Nil(t, err)
		assert.Equal(t, "", msg)
	})

	t.Run("with an unexpected status code should fail", func(t *testing.T) {
		client := manifestClientFn(func(url string) (*http.Response, error) {
			return manifestResponse(http.StatusNotFound, ""), nil
		})

		_, err := checkVersion(client)
		assert.NotNil(t, err)
	})

	t.Run("with no build for this os architecture should fail", func(t *testing.T) {
		client := manifestClientFn(func(url string) (*http.Response, error) {
			return manifestResponse(http.StatusOK, `{"version":"0.1.0","info":{}}`), nil
		})

		_, err := checkVersion(client)
		assert.NotNil(t, err)
	})
}
