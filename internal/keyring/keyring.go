// Package keyring stores health-device integration credentials in the
// OS keyring so they never land in the JSON documents on disk.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/routinely/internal/constants"
)

var (
	// ErrNotFound is returned when no credential is stored for the integration
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Credentials is the credential store used for integration secrets.
// The default implementation wraps the OS keyring; tests substitute an
// in-memory map.
type Credentials interface {
	Get(integration string) (string, error)
	Set(integration, credential string) error
	Delete(integration string) error
}

// OSKeyring stores credentials under the routinely keyring service,
// one entry per integration name.
type OSKeyring struct{}

func (OSKeyring) Get(integration string) (string, error) {
	secret, err := keyring.Get(constants.KeyringService, integration)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

func (OSKeyring) Set(integration, credential string) error {
	if credential == "" {
		return errors.New("credential cannot be empty")
	}
	if err := keyring.Set(constants.KeyringService, integration, credential); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func (OSKeyring) Delete(integration string) error {
	err := keyring.Delete(constants.KeyringService, integration)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// Memory is an in-memory credential store for tests.
type Memory map[string]string

func (m Memory) Get(integration string) (string, error) {
	secret, ok := m[integration]
	if !ok {
		return "", ErrNotFound
	}
	return secret, nil
}

func (m Memory) Set(integration, credential string) error {
	if credential == "" {
		return errors.New("credential cannot be empty")
	}
	m[integration] = credential
	return nil
}

func (m Memory) Delete(integration string) error {
	if _, ok := m[integration]; !ok {
		return ErrNotFound
	}
	delete(m, integration)
	return nil
}
