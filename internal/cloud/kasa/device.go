package kasa

import (
	"encoding/json"
	"fmt"
)

const (
	methodGetDeviceList = "getDeviceList"
)

// Device is a Kasa device registered to the cloud account
type Device struct {
	Alias       string `json:"alias"`
	DeviceID    string `json:"deviceId"`
	DeviceName  string `json:"deviceName"`
	DeviceModel string `json:"deviceModel"`
	Status      int    `json:"status"`
}

type deviceListResult struct {
	DeviceList []Device `json:"deviceList"`
}

// Devices returns the devices registered to the account
func (c *client) Devices() ([]Device, error) {
	result, err := c.do(payload{Method: methodGetDeviceList})
	if err != nil {
		return nil, err
	}

	var list deviceListResult
	if err := json.Unmarshal(result, &list); err != nil {
		return nil, fmt.Errorf("failed to decode device list response: %w", err)
	}
	return list.DeviceList, nil
}
