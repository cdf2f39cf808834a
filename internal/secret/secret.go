// Package secret resolves the lock screen PIN.
package secret

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/zalando/go-keyring"
)

// Keyring coordinates of the PIN entry.
const (
	Service = "memento"
	User    = "pin"
)

// DefaultPIN is used when nothing else is configured.
const DefaultPIN = "030324"

// Source names where a PIN came from.
type Source string

const (
	FromConfig  Source = "config"
	FromKeyring Source = "keyring"
	FromDefault Source = "default"
)

// Options selects the PIN sources to consult.
type Options struct {
	// PIN from the config file; wins when non-empty.
	PIN string
	// UseKeyring enables the OS keyring lookup.
	UseKeyring bool
}

// Resolve returns the PIN and where it came from. A missing keyring entry
// falls through to the default; any other keyring failure is returned along
// with the default so the caller can log it and carry on.
func Resolve(opts Options) (string, Source, error) {
	if pin := strings.TrimSpace(opts.PIN); pin != "" {
		if err := Validate(pin); err != nil {
			return "", FromConfig, err
		}
		return pin, FromConfig, nil
	}
	if opts.UseKeyring {
		pin, err := keyring.Get(Service, User)
		switch {
		case err == nil:
			pin = strings.TrimSpace(pin)
			if verr := Validate(pin); verr != nil {
				return DefaultPIN, FromDefault, fmt.Errorf("keyring pin: %w", verr)
			}
			return pin, FromKeyring, nil
		case errors.Is(err, keyring.ErrNotFound):
		default:
			return DefaultPIN, FromDefault, fmt.Errorf("read keyring: %w", err)
		}
	}
	return DefaultPIN, FromDefault, nil
}

// Validate checks that pin is a non-empty string of ASCII digits.
func Validate(pin string) error {
	if pin == "" {
		return errors.New("pin is empty")
	}
	for _, r := range pin {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return fmt.Errorf("pin must be digits only, got %q", pin)
		}
	}
	return nil
}
