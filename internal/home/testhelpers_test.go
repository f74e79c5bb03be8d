package home

import (
	"testing"

	"github.com/p0sel0k/hw3/internal/device"
)

func newTestRoom(t *testing.T, name string) *Room {
	t.Helper()
	r, err := NewRoom(name)
	if err != nil {
		t.Fatalf("NewRoom(%q) error = %v", name, err)
	}
	return r
}

func newTestSocket(t *testing.T, name string, on bool) *device.Socket {
	t.Helper()
	s, err := device.NewSocket(name)
	if err != nil {
		t.Fatalf("NewSocket(%q) error = %v", name, err)
	}
	if on {
		s.SwitchOn()
	}
	return s
}

func newTestThermometer(t *testing.T, name string) *device.Thermometer {
	t.Helper()
	th, err := device.NewThermometer(name)
	if err != nil {
		t.Fatalf("NewThermometer(%q) error = %v", name, err)
	}
	return th
}

// recordingLogger captures log messages for assertions.
type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.messages = append(l.messages, msg) }

func (l *recordingLogger) contains(msg string) bool {
	for _, m := range l.messages {
		if m == msg {
			return true
		}
	}
	return false
}
