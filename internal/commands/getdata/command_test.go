package getdata

import (
	"testing"

	"github.com/kasa-tools/kasa-cli/internal/cloud/kasa"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/assert"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/mock"
)

func TestGetDataHandler(t *testing.T) {
	t.Run("should print the device telemetry verbatim", func(t *testing.T) {
		responseData := `{"system":{"get_sysinfo":{"err_code":0,"alias":"Lamp","relay_state":1}}}`

		var requestedDeviceID string
		kasaClient := mock.KasaClient{DeviceDataFn: func(deviceID string) (string, error) {
			requestedDeviceID = deviceID
			return responseData, nil
		}}

		out, ui := mock.NewUI()

		cmd := &Command{inputs: inputs{DeviceID: "123"}, kasaClient: kasaClient}
		assert.Nil(t, cmd.Handler(nil, ui))

		assert.Equal(t, "123", requestedDeviceID)
		assert.Equal(t, "01:23:45 UTC INFO  "+responseData+"\n", out.String())
	})

	t.Run("should surface the cloud error", func(t *testing.T) {
		kasaClient := mock.KasaClient{DeviceDataFn: func(deviceID string) (string, error) {
			return "", kasa.ServerError{Code: -20571}
		}}

		cmd := &Command{inputs: inputs{DeviceID: "123"}, kasaClient: kasaClient}
		assert.Equal(t, kasa.ServerError{Code: -20571}, cmd.Handler(nil, nil))
	})
}
