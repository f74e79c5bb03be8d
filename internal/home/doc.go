// Package home implements the in-memory room and device registry.
//
// A Home owns a set of Rooms keyed by name, and each Room owns a set of
// devices keyed by device name. Inserting an entity under a name that is
// already taken replaces the previous entity; callers are told about the
// replacement through the return value of the insert.
//
// Reporting folds bottom-up: each device renders its own block, a Room
// prefixes its header, and the Home concatenates rooms. Rooms and devices
// appear in name order so reports are deterministic. Reporting is strict:
// the first device that cannot render (a socket that is switched off) fails
// the whole report with an *OpError naming the room and device.
//
// Usage:
//
//	h := home.New("flat")
//	room, _ := home.NewRoom("kitchen")
//	_, _ = h.AddRoom(room)
//	s, _ := device.NewSocket("kettle")
//	s.SwitchOn()
//	_, _ = h.AddDevice("kitchen", s)
//	report, err := h.GenerateReport()
//
// Thread Safety:
//
// Home and Room are not safe for concurrent use. They are owned by a single
// goroutine; other goroutines only ever see rendered report strings.
package home
