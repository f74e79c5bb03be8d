package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrDeviceIsTurnedOff) {
//	    // handle switched-off socket
//	}
var (
	// ErrDeviceIsTurnedOff is returned when reading power from a socket that is off.
	ErrDeviceIsTurnedOff = errors.New("device: is turned off")

	// ErrSwitchOnOff is returned when switching a device that has no on/off state.
	ErrSwitchOnOff = errors.New("device: can't be switched on or off")

	// ErrCantAddDevice is returned when a device cannot be constructed from the given input.
	ErrCantAddDevice = errors.New("device: can't add device")

	// ErrUnknownKind is returned when a device kind is not recognised.
	ErrUnknownKind = errors.New("device: unknown kind")
)
