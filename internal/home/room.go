package home

import (
	"fmt"
	"sort"
	"strings"

	"github.com/p0sel0k/hw3/internal/device"
)

// maxRoomNameLength mirrors the device name limit.
const maxRoomNameLength = 100

// Room is a named collection of devices keyed by device name.
type Room struct {
	name    string
	devices map[string]device.Device
}

// NewRoom creates an empty room.
func NewRoom(name string) (*Room, error) {
	if err := validateRoomName(name); err != nil {
		return nil, err
	}
	return &Room{
		name:    name,
		devices: make(map[string]device.Device),
	}, nil
}

func validateRoomName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrCantAddRoom)
	}
	if len(name) > maxRoomNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrCantAddRoom, maxRoomNameLength)
	}
	return nil
}

// valid reports whether r was built by NewRoom.
func (r *Room) valid() bool {
	return r != nil && r.devices != nil && validateRoomName(r.name) == nil
}

// Name returns the room name.
func (r *Room) Name() string {
	return r.name
}

// Len returns the number of devices in the room.
func (r *Room) Len() int {
	return len(r.devices)
}

// String implements fmt.Stringer. Only the name is shown.
func (r *Room) String() string {
	return fmt.Sprintf("Room{name: %q}", r.name)
}

// AddDevice inserts d keyed by its name and reports whether a device with
// the same name was replaced. A nil device or one with an invalid name is
// ignored; Home.AddDevice reports those as errors.
func (r *Room) AddDevice(d device.Device) (replaced bool) {
	if d == nil || device.ValidateName(d.Name()) != nil {
		return false
	}
	_, replaced = r.devices[d.Name()]
	r.devices[d.Name()] = d
	return replaced
}

// RemoveDevice detaches the named device and hands it back to the caller.
func (r *Room) RemoveDevice(name string) (device.Device, error) {
	d, ok := r.devices[name]
	if !ok {
		return nil, &OpError{Op: "remove", Room: r.name, Device: name, Err: ErrNoDeviceInRoom}
	}
	delete(r.devices, name)
	return d, nil
}

// LookupDevice returns the named device without detaching it.
func (r *Room) LookupDevice(name string) (device.Device, bool) {
	d, ok := r.devices[name]
	return d, ok
}

// DeviceNames returns the device names in sorted order.
func (r *Room) DeviceNames() []string {
	names := make([]string, 0, len(r.devices))
	for name := range r.devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CollectReport renders the room header followed by every device block.
// The first device that fails to render aborts the report.
func (r *Room) CollectReport() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Room %s info\n", r.name)
	for _, name := range r.DeviceNames() {
		state, err := r.devices[name].RenderState()
		if err != nil {
			return "", &OpError{Op: "render", Room: r.name, Device: name, Err: err}
		}
		b.WriteString(state)
	}
	return b.String(), nil
}
