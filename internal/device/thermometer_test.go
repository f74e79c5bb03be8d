package device

import (
	"errors"
	"testing"
)

func TestThermometer(t *testing.T) {
	th, err := NewThermometer("t1")
	if err != nil {
		t.Fatalf("NewThermometer() error = %v", err)
	}

	t.Run("switch always fails", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if _, err := th.Switch(); !errors.Is(err, ErrSwitchOnOff) {
				t.Errorf("Switch() #%d error = %v, want ErrSwitchOnOff", i, err)
			}
		}
	})

	t.Run("temperature unaffected by switch attempts", func(t *testing.T) {
		_, _ = th.Switch()
		if th.Temperature() != DefaultTemperature {
			t.Errorf("Temperature() = %d, want %d", th.Temperature(), DefaultTemperature)
		}
	})

	t.Run("render state", func(t *testing.T) {
		got, err := th.RenderState()
		if err != nil {
			t.Fatalf("RenderState() error = %v", err)
		}
		want := ">> Thermometer name is: t1\n>>>> Temperature is: 25\n"
		if got != want {
			t.Errorf("RenderState() = %q, want %q", got, want)
		}
	})

	t.Run("summary", func(t *testing.T) {
		got, err := th.Summary()
		if err != nil {
			t.Fatalf("Summary() error = %v", err)
		}
		if got != "temperature: 25" {
			t.Errorf("Summary() = %q, want %q", got, "temperature: 25")
		}
	})
}

func TestNewThermometer_InvalidName(t *testing.T) {
	_, err := NewThermometer("  ")
	if !errors.Is(err, ErrCantAddDevice) {
		t.Errorf("NewThermometer() error = %v, want ErrCantAddDevice", err)
	}
}
