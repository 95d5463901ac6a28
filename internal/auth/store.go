package auth

import (
	stderrors "errors"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/agentstation/weather/pkg/constants"
	"github.com/agentstation/weather/pkg/errors"
)

// Keyring is the subset of the OS credential store the Store needs.
type Keyring interface {
	Get(service, user string) (string, error)
	Set(service, user, secret string) error
	Delete(service, user string) error
}

// osKeyring adapts the go-keyring package functions to Keyring.
type osKeyring struct{}

func (osKeyring) Get(service, user string) (string, error) { return keyring.Get(service, user) }
func (osKeyring) Set(service, user, secret string) error  { return keyring.Set(service, user, secret) }
func (osKeyring) Delete(service, user string) error       { return keyring.Delete(service, user) }

// Store reads and writes the API key in a credential store.
type Store struct {
	ring    Keyring
	service string
	user    string
}

// NewStore returns a Store backed by the OS credential store.
func NewStore() *Store {
	return NewStoreWithKeyring(osKeyring{})
}

// NewStoreWithKeyring returns a Store backed by ring.
func NewStoreWithKeyring(ring Keyring) *Store {
	return &Store{
		ring:    ring,
		service: constants.KeyringService,
		user:    constants.KeyringUser,
	}
}

// current returns the stored key, or "" when none is stored.
func (s *Store) current() (string, error) {
	key, err := s.ring.Get(s.service, s.user)
	if err != nil {
		if stderrors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", errors.WrapResource("read", "api key", "", err)
	}
	return key, nil
}

// StoreKey saves key when none is stored. An existing key is replaced only
// when overwrite is set; otherwise it is left untouched and MsgPresent is returned.
func (s *Store) StoreKey(key string, overwrite bool) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.NewValidationError("key", "", "API key must not be empty")
	}

	existing, err := s.current()
	if err != nil {
		return "", err
	}

	if existing != "" && !overwrite {
		return MsgPresent, nil
	}

	if err := s.ring.Set(s.service, s.user, key); err != nil {
		return "", errors.WrapResource("store", "api key", "", err)
	}

	if existing == "" {
		return MsgStored, nil
	}
	return MsgOverwritten, nil
}

// Authenticate returns the stored key.
func (s *Store) Authenticate() (string, error) {
	key, err := s.current()
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", errors.NewAuthenticationError("keyring",
			"Please provide a valid API key through the use of the 'weather auth' command.", errors.ErrAPIKeyRequired)
	}
	return key, nil
}

// DeleteKey removes the stored key. Removing a missing key is not an error.
func (s *Store) DeleteKey() error {
	if err := s.ring.Delete(s.service, s.user); err != nil && !stderrors.Is(err, keyring.ErrNotFound) {
		return errors.WrapResource("delete", "api key", "", err)
	}
	return nil
}

// KeySource yields the API key for a command. Implemented by *Store.
type KeySource interface {
	Authenticate() (string, error)
}

// Resolve returns configKey when set, else the key from store.
func Resolve(configKey string, store KeySource) (string, Source, error) {
	if key := strings.TrimSpace(configKey); key != "" {
		return key, SourceEnv, nil
	}
	key, err := store.Authenticate()
	if err != nil {
		return "", SourceNone, err
	}
	return key, SourceKeyring, nil
}

// Check reports the key status without returning the key itself.
func Check(configKey string, store KeySource) *Status {
	key, source, err := Resolve(configKey, store)
	if err != nil {
		return &Status{State: StateMissing, Source: SourceNone}
	}
	return &Status{State: StateConfigured, Source: source, Preview: Preview(key)}
}

// Preview masks all but the last four characters of key.
func Preview(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}
