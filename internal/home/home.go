package home

import (
	"sort"
	"strings"

	"github.com/p0sel0k/hw3/internal/device"
)

// Messages returned by AddRoom.
const (
	msgRoomAdded   = "New room added"
	msgRoomUpdated = "Existed room was updated: "
)

// Logger defines the logging interface used by Home.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Home is the root of the registry: a labelled set of rooms keyed by name.
type Home struct {
	name   string
	rooms  map[string]*Room
	logger Logger
}

// New creates an empty home. The name is a label and need not be unique.
func New(name string) *Home {
	return &Home{
		name:   name,
		rooms:  make(map[string]*Room),
		logger: noopLogger{},
	}
}

// SetLogger sets the logger used to report replacements.
func (h *Home) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	h.logger = logger
}

// Name returns the home label.
func (h *Home) Name() string {
	return h.name
}

// Len returns the number of rooms.
func (h *Home) Len() int {
	return len(h.rooms)
}

// RoomNames returns the room names in sorted order.
func (h *Home) RoomNames() []string {
	names := make([]string, 0, len(h.rooms))
	for name := range h.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddRoom inserts room keyed by its name. If a room with the same name
// existed it is dropped together with its devices, and the returned message
// describes the replaced room. A nil room, or one not built by NewRoom,
// fails with ErrCantAddRoom and leaves the home unchanged.
func (h *Home) AddRoom(room *Room) (string, error) {
	if !room.valid() {
		return "", &OpError{Op: "add", Err: ErrCantAddRoom}
	}
	old, existed := h.rooms[room.name]
	h.rooms[room.name] = room
	if existed {
		h.logger.Info("room replaced", "room", room.name, "dropped_devices", old.Len())
		return msgRoomUpdated + old.String(), nil
	}
	h.logger.Debug("room added", "room", room.name)
	return msgRoomAdded, nil
}

// GetRoom returns the named room for in-place mutation.
func (h *Home) GetRoom(name string) (*Room, error) {
	r, ok := h.rooms[name]
	if !ok {
		return nil, &OpError{Op: "get", Room: name, Err: ErrNoRoomInHome}
	}
	return r, nil
}

// RemoveRoom detaches the named room and hands it back to the caller.
func (h *Home) RemoveRoom(name string) (*Room, error) {
	r, ok := h.rooms[name]
	if !ok {
		return nil, &OpError{Op: "remove", Room: name, Err: ErrNoRoomInHome}
	}
	delete(h.rooms, name)
	h.logger.Debug("room removed", "room", name)
	return r, nil
}

// AddDevice inserts d into the named room and returns the inserted device.
// The room is resolved before the device is checked; on failure nothing changes.
func (h *Home) AddDevice(roomName string, d device.Device) (device.Device, error) {
	r, ok := h.rooms[roomName]
	if !ok {
		return nil, &OpError{Op: "add", Room: roomName, Err: ErrNoRoomInHome}
	}
	if d == nil {
		return nil, &OpError{Op: "add", Room: roomName, Err: device.ErrCantAddDevice}
	}
	if err := device.ValidateName(d.Name()); err != nil {
		return nil, &OpError{Op: "add", Room: roomName, Device: d.Name(), Err: err}
	}
	if r.AddDevice(d) {
		h.logger.Info("device replaced", "room", roomName, "device", d.Name())
	} else {
		h.logger.Debug("device added", "room", roomName, "device", d.Name(), "kind", d.Kind())
	}
	return d, nil
}

// RemoveDevice detaches the named device from the named room.
func (h *Home) RemoveDevice(roomName, deviceName string) (device.Device, error) {
	r, ok := h.rooms[roomName]
	if !ok {
		return nil, &OpError{Op: "remove", Room: roomName, Device: deviceName, Err: ErrNoRoomInHome}
	}
	return r.RemoveDevice(deviceName)
}

// SwitchDevice toggles the named device in place and returns its prior state label.
func (h *Home) SwitchDevice(roomName, deviceName string) (string, error) {
	r, ok := h.rooms[roomName]
	if !ok {
		return "", &OpError{Op: "switch", Room: roomName, Device: deviceName, Err: ErrNoRoomInHome}
	}
	d, ok := r.LookupDevice(deviceName)
	if !ok {
		return "", &OpError{Op: "switch", Room: roomName, Device: deviceName, Err: ErrNoDeviceInRoom}
	}
	prev, err := d.Switch()
	if err != nil {
		return "", &OpError{Op: "switch", Room: roomName, Device: deviceName, Err: err}
	}
	return prev, nil
}

// Walk calls fn for every device, rooms and devices in name order.
// Empty rooms are skipped.
func (h *Home) Walk(fn func(*Room, device.Device)) {
	for _, roomName := range h.RoomNames() {
		r := h.rooms[roomName]
		for _, deviceName := range r.DeviceNames() {
			fn(r, r.devices[deviceName])
		}
	}
}

// GenerateReport concatenates every room's report in room name order.
// Any room failure aborts the whole report.
func (h *Home) GenerateReport() (string, error) {
	var b strings.Builder
	for _, name := range h.RoomNames() {
		part, err := h.rooms[name].CollectReport()
		if err != nil {
			return "", err
		}
		b.WriteString(part)
	}
	return b.String(), nil
}
