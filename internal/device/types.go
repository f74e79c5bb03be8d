package device

import (
	"fmt"
	"strings"
)

// Kind identifies a device variant.
type Kind string

// Device kinds. The set is closed: every switch over Kind handles all of them.
const (
	KindSocket      Kind = "socket"
	KindThermometer Kind = "thermometer"
)

// AllKinds returns all valid device kinds.
func AllKinds() []Kind {
	return []Kind{KindSocket, KindThermometer}
}

// ParseKind converts a configuration value to a Kind.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindSocket, KindThermometer:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// State labels returned by Switch.
const (
	StateOn  = "On"
	StateOff = "Off"
)

// Device is a simulated appliance owned by a room.
//
// The interface is sealed: only Socket and Thermometer implement it, so
// type switches over a Device can be exhaustive.
type Device interface {
	// Name returns the immutable identity of the device.
	Name() string

	// Kind returns the variant tag.
	Kind() Kind

	// Switch toggles the on/off state and returns the label of the state
	// before the toggle. Devices without on/off state return ErrSwitchOnOff.
	Switch() (string, error)

	// RenderState returns the two-line report block for the device.
	RenderState() (string, error)

	// Summary returns a compact single-line reading such as "power: 220".
	Summary() (string, error)

	sealed()
}

// New creates a device of the given kind.
func New(kind Kind, name string) (Device, error) {
	switch kind {
	case KindSocket:
		s, err := NewSocket(name)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindThermometer:
		t, err := NewThermometer(name)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
