//go:build !darwin

package crypto

import (
	"errors"
	"fmt"
	"os"
)

// envKey supplies the database key on platforms without a usable
// system keyring.
const envKey = "ROLODEX_DB_KEY"

type envKeyring struct{}

func newPlatformKeyring() Keyring {
	return &envKeyring{}
}

// GetKey reads the database key from the environment
func (k *envKeyring) GetKey() (string, error) {
	key := os.Getenv(envKey)
	if key == "" {
		return "", fmt.Errorf("%s environment variable not set", envKey)
	}

	return key, nil
}

// SetKey cannot persist anything here; it tells the user what to export
// so the first-run password survives future invocations.
func (k *envKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	return fmt.Errorf("keyring not available on this platform: please set %s environment variable to '%s'", envKey, password)
}

// IsAvailable reports whether the environment carries a key
func (k *envKeyring) IsAvailable() bool {
	return os.Getenv(envKey) != ""
}
