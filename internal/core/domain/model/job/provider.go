package job

import (
	"fmt"

	"gigboard/internal/pkg/errs"
)

// Provider identifies an external gig-work source a job was listed by.
// The set of providers is closed: dispatching on a Provider value is always
// exhaustive over the constants below.
type Provider string

const (
	ProviderDoorDash  Provider = "doordash"
	ProviderUberEats  Provider = "ubereats"
	ProviderInstacart Provider = "instacart"
)

// AllProviders returns every configured provider identifier.
func AllProviders() []Provider {
	return []Provider{ProviderDoorDash, ProviderUberEats, ProviderInstacart}
}

// ParseProvider converts a wire representation into a Provider.
// Returns an error for unrecognized values.
func ParseProvider(raw string) (Provider, error) {
	for _, p := range AllProviders() {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause(
		"provider",
		fmt.Errorf("%q is not a known provider", raw),
	)
}

// Validate checks that the Provider is one of the configured sources.
func (p Provider) Validate() error {
	_, err := ParseProvider(string(p))
	return err
}

// String returns the provider identifier.
func (p Provider) String() string {
	return string(p)
}
