package mock

import (
	"github.com/kasa-tools/kasa-cli/internal/auth"
	"github.com/kasa-tools/kasa-cli/internal/cloud/kasa"
)

// KasaClient is a mocked Kasa cloud client
type KasaClient struct {
	kasa.Client
	AuthenticateFn func(creds auth.Credentials) (kasa.Session, error)
	DevicesFn      func() ([]kasa.Device, error)
	DeviceDataFn   func(deviceID string) (string, error)
}

// Authenticate calls the mocked Authenticate implementation if provided,
// otherwise the call falls back to the underlying kasa.Client implementation.
// NOTE: this may panic if the underlying kasa.Client is left undefined
func (kc KasaClient) Authenticate(creds auth.Credentials) (kasa.Session, error) {
	if kc.AuthenticateFn != nil {
		return kc.AuthenticateFn(creds)
	}
	return kc.Client.Authenticate(creds)
}

// Devices calls the mocked Devices implementation if provided,
// otherwise the call falls back to the underlying kasa.Client implementation.
// NOTE: this may panic if the underlying kasa.Client is left undefined
func (kc KasaClient) Devices() ([]kasa.Device, error) {
	if kc.DevicesFn != nil {
		return kc.DevicesFn()
	}
	return kc.Client.Devices()
}

// DeviceData calls the mocked DeviceData implementation if provided,
// otherwise the call falls back to the underlying kasa.Client implementation.
// NOTE: this may panic if the underlying kasa.Client is left undefined
func (kc KasaClient) DeviceData(deviceID string) (string, error) {
	if kc.DeviceDataFn != nil {
		return kc.DeviceDataFn(deviceID)
	}
	return kc.Client.DeviceData(deviceID)
}
