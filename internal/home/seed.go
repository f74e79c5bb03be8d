package home

import (
	"fmt"

	"github.com/p0sel0k/hw3/internal/device"
	"github.com/p0sel0k/hw3/internal/infrastructure/config"
)

// Seed builds a Home from the layout section of the configuration.
//
// Rooms and devices are inserted in file order, so a later entry with a
// duplicate name replaces an earlier one. The returned Home uses logger.
func Seed(cfg config.HomeConfig, logger Logger) (*Home, error) {
	h := New(cfg.Name)
	if logger != nil {
		h.SetLogger(logger)
	}

	for i, rc := range cfg.Rooms {
		room, err := NewRoom(rc.Name)
		if err != nil {
			return nil, fmt.Errorf("rooms[%d]: %w", i, err)
		}

		for j, dc := range rc.Devices {
			d, err := deviceFromConfig(dc)
			if err != nil {
				return nil, fmt.Errorf("rooms[%d].devices[%d]: %w", i, j, err)
			}
			if room.AddDevice(d) {
				h.logger.Warn("duplicate device in layout, keeping last entry", "room", rc.Name, "device", dc.Name)
			}
		}

		if _, existed := h.rooms[room.name]; existed {
			h.logger.Warn("duplicate room in layout, keeping last entry", "room", rc.Name)
		}
		if _, err := h.AddRoom(room); err != nil {
			return nil, fmt.Errorf("rooms[%d]: %w", i, err)
		}
	}

	h.logger.Info("home seeded", "home", h.name, "rooms", h.Len())
	return h, nil
}

// deviceFromConfig converts one layout entry into a device.
// Every failure wraps device.ErrCantAddDevice.
func deviceFromConfig(dc config.DeviceConfig) (device.Device, error) {
	kind, err := device.ParseKind(dc.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", device.ErrCantAddDevice, err)
	}

	d, err := device.New(kind, dc.Name)
	if err != nil {
		return nil, err
	}

	if dc.SwitchedOn {
		switch v := d.(type) {
		case *device.Socket:
			v.SwitchOn()
		case *device.Thermometer:
			return nil, fmt.Errorf("%w: thermometer %q has no on/off state", device.ErrCantAddDevice, dc.Name)
		}
	}
	return d, nil
}
