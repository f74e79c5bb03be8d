package home

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/p0sel0k/hw3/internal/device"
)

func TestHome_AddRoom(t *testing.T) {
	h := New("home")

	if got, err := h.AddRoom(newTestRoom(t, "first")); err != nil || got != "New room added" {
		t.Errorf("AddRoom() = %q, %v, want %q", got, err, "New room added")
	}

	got, err := h.AddRoom(newTestRoom(t, "first"))
	if err != nil {
		t.Fatalf("AddRoom() duplicate error = %v", err)
	}
	want := `Existed room was updated: Room{name: "first"}`
	if got != want {
		t.Errorf("AddRoom() duplicate = %q, want %q", got, want)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHome_AddRoom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		room *Room
	}{
		{"nil room", nil},
		{"zero value room", &Room{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New("home")
			h.AddRoom(newTestRoom(t, "first"))

			msg, err := h.AddRoom(tt.room)
			if !errors.Is(err, ErrCantAddRoom) {
				t.Errorf("AddRoom() error = %v, want ErrCantAddRoom", err)
			}
			if msg != "" {
				t.Errorf("AddRoom() message = %q, want empty", msg)
			}
			if want := []string{"first"}; !reflect.DeepEqual(h.RoomNames(), want) {
				t.Errorf("RoomNames() = %v, want %v", h.RoomNames(), want)
			}
		})
	}
}

func TestHome_AddRoom_ReplacementDropsDevices(t *testing.T) {
	logger := &recordingLogger{}
	h := New("home")
	h.SetLogger(logger)

	old := newTestRoom(t, "first")
	old.AddDevice(newTestSocket(t, "plug", true))
	h.AddRoom(old)
	h.AddRoom(newTestRoom(t, "first"))

	r, err := h.GetRoom("first")
	if err != nil {
		t.Fatalf("GetRoom() error = %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() after replacement = %d, want 0", r.Len())
	}
	if !logger.contains("room replaced") {
		t.Errorf("logger messages = %v, want %q", logger.messages, "room replaced")
	}
}

func TestHome_GetRoom_ReturnsSameRoom(t *testing.T) {
	h := New("home")
	for _, name := range []string{"first", "second", "attic"} {
		t.Run(name, func(t *testing.T) {
			r := newTestRoom(t, name)
			r.AddDevice(newTestSocket(t, "plug-"+name, false))
			h.AddRoom(r)

			got, err := h.GetRoom(name)
			if err != nil {
				t.Fatalf("GetRoom() error = %v", err)
			}
			if got != r {
				t.Error("GetRoom() returned a different room")
			}
			if want := []string{"plug-" + name}; !reflect.DeepEqual(got.DeviceNames(), want) {
				t.Errorf("DeviceNames() = %v, want %v", got.DeviceNames(), want)
			}
		})
	}
}

func TestHome_GetRoom_NotFound(t *testing.T) {
	h := New("home")
	_, err := h.GetRoom("missing")
	if !errors.Is(err, ErrNoRoomInHome) {
		t.Errorf("GetRoom() error = %v, want ErrNoRoomInHome", err)
	}
}

func TestHome_RemoveRoom_Twice(t *testing.T) {
	h := New("home")
	r := newTestRoom(t, "first")
	h.AddRoom(r)

	got, err := h.RemoveRoom("first")
	if err != nil {
		t.Fatalf("RemoveRoom() error = %v", err)
	}
	if got != r {
		t.Error("RemoveRoom() returned a different room")
	}

	_, err = h.RemoveRoom("first")
	if !errors.Is(err, ErrNoRoomInHome) {
		t.Errorf("RemoveRoom() second call error = %v, want ErrNoRoomInHome", err)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHome_AddDevice(t *testing.T) {
	h := New("home")
	h.AddRoom(newTestRoom(t, "first"))
	s := newTestSocket(t, "plug", false)

	got, err := h.AddDevice("first", s)
	if err != nil {
		t.Fatalf("AddDevice() error = %v", err)
	}
	if got != device.Device(s) {
		t.Error("AddDevice() returned a different device")
	}

	r, _ := h.GetRoom("first")
	if _, ok := r.LookupDevice("plug"); !ok {
		t.Error("LookupDevice() ok = false after AddDevice")
	}
}

func TestHome_AddDevice_Errors(t *testing.T) {
	tests := []struct {
		name    string
		room    string
		dev     device.Device
		wantErr error
	}{
		{"missing room", "missing", nil, ErrNoRoomInHome},
		{"missing room with device", "missing", &device.Socket{}, ErrNoRoomInHome},
		{"nil device", "first", nil, device.ErrCantAddDevice},
		{"unnamed device", "first", &device.Socket{}, device.ErrCantAddDevice},
		{"unnamed thermometer", "first", &device.Thermometer{}, device.ErrCantAddDevice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New("home")
			h.AddRoom(newTestRoom(t, "first"))

			_, err := h.AddDevice(tt.room, tt.dev)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddDevice() error = %v, want %v", err, tt.wantErr)
			}
			if want := []string{"first"}; !reflect.DeepEqual(h.RoomNames(), want) {
				t.Errorf("RoomNames() = %v, want %v", h.RoomNames(), want)
			}
			r, _ := h.GetRoom("first")
			if r.Len() != 0 {
				t.Errorf("room Len() = %d, want 0", r.Len())
			}
		})
	}
}

func TestHome_RemoveDevice(t *testing.T) {
	h := New("home")
	h.AddRoom(newTestRoom(t, "first"))
	if _, err := h.AddDevice("first", newTestSocket(t, "plug", false)); err != nil {
		t.Fatalf("AddDevice() error = %v", err)
	}

	if _, err := h.RemoveDevice("missing", "plug"); !errors.Is(err, ErrNoRoomInHome) {
		t.Errorf("RemoveDevice() missing room error = %v, want ErrNoRoomInHome", err)
	}
	if _, err := h.RemoveDevice("first", "lamp"); !errors.Is(err, ErrNoDeviceInRoom) {
		t.Errorf("RemoveDevice() missing device error = %v, want ErrNoDeviceInRoom", err)
	}

	got, err := h.RemoveDevice("first", "plug")
	if err != nil {
		t.Fatalf("RemoveDevice() error = %v", err)
	}
	if got.Name() != "plug" {
		t.Errorf("RemoveDevice() name = %q, want %q", got.Name(), "plug")
	}
}

func TestHome_SwitchDevice(t *testing.T) {
	h := New("home")
	h.AddRoom(newTestRoom(t, "first"))
	s := newTestSocket(t, "plug", false)
	_, _ = h.AddDevice("first", s)
	_, _ = h.AddDevice("first", newTestThermometer(t, "t1"))

	prev, err := h.SwitchDevice("first", "plug")
	if err != nil {
		t.Fatalf("SwitchDevice() error = %v", err)
	}
	if prev != device.StateOff {
		t.Errorf("SwitchDevice() = %q, want %q", prev, device.StateOff)
	}
	if !s.IsSwitchedOn() {
		t.Error("IsSwitchedOn() = false, want switch applied in place")
	}

	tests := []struct {
		name    string
		room    string
		dev     string
		wantErr error
	}{
		{"missing room", "missing", "plug", ErrNoRoomInHome},
		{"missing device", "first", "lamp", ErrNoDeviceInRoom},
		{"thermometer", "first", "t1", device.ErrSwitchOnOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := h.SwitchDevice(tt.room, tt.dev); !errors.Is(err, tt.wantErr) {
				t.Errorf("SwitchDevice() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHome_Walk(t *testing.T) {
	h := New("home")
	second := newTestRoom(t, "second")
	second.AddDevice(newTestSocket(t, "socket3", false))
	first := newTestRoom(t, "first")
	first.AddDevice(newTestSocket(t, "socket2", true))
	first.AddDevice(newTestThermometer(t, "t1"))
	h.AddRoom(second)
	h.AddRoom(first)
	h.AddRoom(newTestRoom(t, "empty"))

	var visited []string
	h.Walk(func(r *Room, d device.Device) {
		visited = append(visited, r.Name()+"/"+d.Name())
	})

	want := []string{"first/socket2", "first/t1", "second/socket3"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("Walk() visited %v, want %v", visited, want)
	}
}

// buildScenarioHome builds the two-room home used by the report tests.
func buildScenarioHome(t *testing.T, socket3On bool) *Home {
	t.Helper()
	h := New("home")
	h.AddRoom(newTestRoom(t, "first"))
	h.AddRoom(newTestRoom(t, "second"))

	adds := []struct {
		room string
		dev  device.Device
	}{
		{"first", newTestSocket(t, "socket1", true)},
		{"first", newTestSocket(t, "socket2", true)},
		{"first", newTestThermometer(t, "t1")},
		{"second", newTestSocket(t, "socket3", socket3On)},
	}
	for _, a := range adds {
		if _, err := h.AddDevice(a.room, a.dev); err != nil {
			t.Fatalf("AddDevice(%q, %q) error = %v", a.room, a.dev.Name(), err)
		}
	}
	return h
}

func TestHome_GenerateReport_StrictFailure(t *testing.T) {
	h := buildScenarioHome(t, false)

	report, err := h.GenerateReport()
	if !errors.Is(err, device.ErrDeviceIsTurnedOff) {
		t.Fatalf("GenerateReport() error = %v, want ErrDeviceIsTurnedOff", err)
	}
	if report != "" {
		t.Errorf("GenerateReport() report = %q, want empty on failure", report)
	}
	msg := err.Error()
	if !strings.Contains(msg, `"second"`) || !strings.Contains(msg, `"socket3"`) {
		t.Errorf("Error() = %q, want room second and device socket3 named", msg)
	}
}

func TestHome_GenerateReport_AllOn(t *testing.T) {
	h := buildScenarioHome(t, true)

	got, err := h.GenerateReport()
	if err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}

	want := "Room first info\n" +
		">> Socket name is: socket1\n" +
		">>>> Socket power is '220'\n" +
		">> Socket name is: socket2\n" +
		">>>> Socket power is '220'\n" +
		">> Thermometer name is: t1\n" +
		">>>> Temperature is: 25\n" +
		"Room second info\n" +
		">> Socket name is: socket3\n" +
		">>>> Socket power is '220'\n"
	if got != want {
		t.Errorf("GenerateReport() =\n%s\nwant\n%s", got, want)
	}
}

func TestHome_GenerateReport_Empty(t *testing.T) {
	got, err := New("home").GenerateReport()
	if err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}
	if got != "" {
		t.Errorf("GenerateReport() = %q, want empty", got)
	}
}
