package kasa

import (
	"encoding/json"
	"fmt"
)

const (
	methodPassthrough = "passthrough"
)

// telemetryRequestData is the device-side request relayed by the cloud:
// system info plus real-time energy meter readings
const telemetryRequestData = `{"system":{"get_sysinfo":null},"emeter":{"get_realtime":null}}`

type passthroughPayload struct {
	DeviceID    string `json:"deviceId"`
	RequestData string `json:"requestData"`
}

type passthroughResult struct {
	ResponseData string `json:"responseData"`
}

// DeviceData returns the device's raw telemetry payload verbatim
func (c *client) DeviceData(deviceID string) (string, error) {
	result, err := c.do(payload{
		Method: methodPassthrough,
		Params: passthroughPayload{deviceID, telemetryRequestData},
	})
	if err != nil {
		return "", err
	}

	var data passthroughResult
	if err := json.Unmarshal(result, &data); err != nil {
		return "", fmt.Errorf("failed to decode telemetry response: %w", err)
	}
	return data.ResponseData, nil
}
