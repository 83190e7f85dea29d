// Package confloader provides configuration loading mechanism.
package confloader

import "errors"

// ErrReadBytesNotSupported is returned when ReadBytes is called on a map provider.
var ErrReadBytesNotSupported = errors.New("confloader: map provider has no byte form, use Read()")

// mapProvider is a koanf provider backed by an in-memory map, used
// for flag overrides and tests.
//
// koanf providers implement either ReadBytes() or Read(); for a map
// of defaults only Read() makes sense.
type mapProvider map[string]any

// ReadBytes always fails; a map has no byte serialization.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read returns the configuration map.
func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
