// Package auth stores and resolves the weather provider API key.
//
// The key lives in the OS credential store (macOS Keychain, Windows Credential
// Manager, Secret Service on Linux) under a fixed service/user pair. It is read
// on every authenticated command and never held longer than one call.
package auth

// State represents where, if anywhere, an API key was found.
type State int

const (
	// StateConfigured means a key is available.
	StateConfigured State = iota
	// StateMissing means no key is available from any source.
	StateMissing
)

// String returns the state label.
func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by its label.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Source names where an API key came from.
type Source string

const (
	// SourceEnv is the WEATHER_API_KEY variable, a .env file or the config file.
	SourceEnv Source = "env"
	// SourceKeyring is the OS credential store.
	SourceKeyring Source = "keyring"
	// SourceNone means the key was not found.
	SourceNone Source = "none"
)

// Status describes the API key without exposing it.
type Status struct {
	State   State  `json:"state" yaml:"state"`
	Source  Source `json:"source" yaml:"source"`
	Preview string `json:"preview,omitempty" yaml:"preview,omitempty"`
}

// Messages returned by Store.StoreKey.
const (
	MsgStored      = "Stored a new API key."
	MsgOverwritten = "Overwritten previous API key with new one."
	MsgPresent     = "API key already present, use overwrite to update to a new one."
)
