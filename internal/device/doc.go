// Package device provides the simulated appliances managed by the smarthome registry.
//
// A Device is one of a closed set of variants. Each variant keeps its own
// in-memory state and knows how to render it for a report.
//
// # Architecture
//
//	┌───────────────────────────────────────────────────────────┐
//	│                      Device (sealed)                      │
//	│                                                           │
//	│  ┌────────────────────┐      ┌────────────────────────┐   │
//	│  │       Socket       │      │      Thermometer       │   │
//	│  │    (socket.go)     │      │   (thermometer.go)     │   │
//	│  │                    │      │                        │   │
//	│  │ • on/off switch    │      │ • fixed reading        │   │
//	│  │ • rated power      │      │ • not switchable       │   │
//	│  └────────────────────┘      └────────────────────────┘   │
//	└───────────────────────────────────────────────────────────┘
//
// # Key Types
//
//   - Device: the common contract (name, kind, switch, render, summary)
//   - Kind: the variant tag used by configuration and exhaustive switches
//   - Socket: a switchable outlet with a fixed rated power
//   - Thermometer: a sensor with a fixed simulated temperature
//
// # Usage
//
//	socket, err := device.NewSocket("socket1")
//	if err != nil {
//	    return err
//	}
//	socket.SwitchOn()
//
//	state, err := socket.RenderState()
//	if errors.Is(err, device.ErrDeviceIsTurnedOff) {
//	    // an off socket has no power reading
//	}
//
// # Thread Safety
//
// Devices are not safe for concurrent use. They are owned by exactly one
// Room at a time and mutated from a single goroutine.
package device
