package home

import (
	"errors"
	"fmt"
)

// Domain errors for registry operations.
var (
	// ErrNoRoomInHome is returned when a room name does not resolve.
	ErrNoRoomInHome = errors.New("home: no room in home")

	// ErrNoDeviceInRoom is returned when a device name does not resolve within a room.
	ErrNoDeviceInRoom = errors.New("home: no device in room")

	// ErrCantAddRoom is returned when a room cannot be constructed.
	ErrCantAddRoom = errors.New("home: can't add room")
)

// OpError records a failed registry operation together with the room and
// device it was applied to. Device is empty for room-level operations.
type OpError struct {
	Op     string
	Room   string
	Device string
	Err    error
}

func (e *OpError) Error() string {
	switch {
	case e.Device != "" && e.Room != "":
		return fmt.Sprintf("%s device %q in room %q: %v", e.Op, e.Device, e.Room, e.Err)
	case e.Room != "":
		return fmt.Sprintf("%s room %q: %v", e.Op, e.Room, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying error for errors.Is / errors.As support.
func (e *OpError) Unwrap() error {
	return e.Err
}
