package user

import (
	"fmt"
	"time"

	"github.com/kasa-tools/kasa-cli/internal/auth"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "kasa"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `Specify your profile (Default value: "default")`

	FlagConfig      = "config"
	FlagConfigShort = "c"
	FlagConfigUsage = "Override the path to the credential record file"

	FlagBaseURL      = "base-url"
	FlagBaseURLUsage = "specify the base Kasa cloud server URL"

	// DefaultBaseURL is the Kasa cloud endpoint used when none is configured
	DefaultBaseURL = "https://wap.tplinkcloud.com"
)

// Profile is the CLI profile
//
// It owns the on-disk credential record: a yaml document holding the
// username, password and cached session token under the profile name.
type Profile struct {
	Flags
	Name string

	dir string
	fs  afero.Fs
}

// Flags are the CLI profile flags
type Flags struct {
	ConfigPath string
	BaseURL    string
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := HomeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
	}

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   afero.NewOsFs(),
	}, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	viper.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return viper.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p Profile) Load() error {
	if p.Flags.ConfigPath != "" {
		viper.SetConfigFile(p.Flags.ConfigPath)
	} else {
		viper.SetConfigName(p.Name)
		viper.AddConfigPath(p.dir)
	}
	viper.SetConfigType(ProfileType)

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			return nil // proceed if profile doesn't exist
		}
		if _, statErr := p.fs.Stat(p.Path()); statErr != nil {
			return nil // proceed if profile doesn't exist at an overridden path
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	viper.SetConfigPermissions(0600)
	if err := viper.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags
func (p *Profile) ResolveFlags() error {
	if p.Flags.BaseURL == "" {
		baseURL := p.BaseURL()
		if baseURL == "" {
			baseURL = DefaultBaseURL
		}
		p.Flags.BaseURL = baseURL
	}
	p.SetBaseURL(p.Flags.BaseURL)
	return nil
}

// Exists returns whether the credential record file exists on disk
func (p Profile) Exists() bool {
	exists, err := afero.Exists(p.fs, p.Path())
	return err == nil && exists
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	if p.Flags.ConfigPath != "" {
		return p.Flags.ConfigPath
	}
	return fmt.Sprintf("%s/%s.%s", p.dir, p.Name, ProfileType)
}

// set of supported CLI profile record keys
const (
	keyUsername = "username"
	keyPassword = "password"
	keyToken    = "token"

	keyBaseURL          = "base_url"
	keyLastVersionCheck = "last_version_check"
)

// Credentials gets the CLI profile credentials
func (p Profile) Credentials() auth.Credentials {
	return auth.Credentials{
		Username: p.GetString(keyUsername),
		Password: p.GetString(keyPassword),
	}
}

// SetCredentials sets the CLI profile credentials
func (p Profile) SetCredentials(creds auth.Credentials) {
	p.SetString(keyUsername, creds.Username)
	p.SetString(keyPassword, creds.Password)
}

// ClearCredentials clears the CLI profile credentials
func (p Profile) ClearCredentials() {
	p.Clear(keyUsername)
	p.Clear(keyPassword)
}

// Session gets the CLI profile session
func (p Profile) Session() auth.Session {
	return auth.Session{
		Token: p.GetString(keyToken),
	}
}

// SetSession sets the CLI profile session
func (p Profile) SetSession(session auth.Session) {
	p.SetString(keyToken, session.Token)
}

// ClearSession clears the CLI profile session
func (p Profile) ClearSession() {
	p.Clear(keyToken)
}

// BaseURL gets the CLI profile Kasa cloud base url
func (p Profile) BaseURL() string {
	return p.GetString(keyBaseURL)
}

// SetBaseURL sets the CLI profile Kasa cloud base url
func (p Profile) SetBaseURL(baseURL string) {
	p.SetString(keyBaseURL, baseURL)
}

// LastVersionCheck gets the CLI profile last version check
func (p Profile) LastVersionCheck() time.Time {
	v := p.GetString(keyLastVersionCheck)

	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SetLastVersionCheck sets the CLI profile last version check
func (p Profile) SetLastVersionCheck(t time.Time) {
	p.SetString(keyLastVersionCheck, t.Format(time.RFC3339Nano))
}
