package device

import "fmt"

// DefaultSocketPower is the rated power of a socket in watts.
const DefaultSocketPower = 220

// Socket is a switchable power outlet.
// A new socket starts switched off.
type Socket struct {
	name       string
	switchedOn bool
}

// NewSocket creates a switched-off socket with the default rated power.
func NewSocket(name string) (*Socket, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Socket{name: name}, nil
}

func (*Socket) sealed() {}

// Name returns the socket name.
func (s *Socket) Name() string { return s.name }

// Kind returns KindSocket.
func (*Socket) Kind() Kind { return KindSocket }

// IsSwitchedOn reports whether the socket is on.
func (s *Socket) IsSwitchedOn() bool { return s.switchedOn }

// SwitchOn turns the socket on.
func (s *Socket) SwitchOn() { s.switchedOn = true }

// SwitchOff turns the socket off.
func (s *Socket) SwitchOff() { s.switchedOn = false }

// Switch flips the socket and returns the label of the previous state.
func (s *Socket) Switch() (string, error) {
	prev := StateOff
	if s.switchedOn {
		prev = StateOn
	}
	s.switchedOn = !s.switchedOn
	return prev, nil
}

// Power returns the current power draw.
// An off socket has no reading and returns ErrDeviceIsTurnedOff, never 0.
func (s *Socket) Power() (int, error) {
	if !s.switchedOn {
		return 0, fmt.Errorf("%w: socket %q", ErrDeviceIsTurnedOff, s.name)
	}
	return DefaultSocketPower, nil
}

// RenderState returns the report block for the socket.
func (s *Socket) RenderState() (string, error) {
	p, err := s.Power()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(">> Socket name is: %s\n>>>> Socket power is '%d'\n", s.name, p), nil
}

// Summary returns "power: <watts>".
func (s *Socket) Summary() (string, error) {
	p, err := s.Power()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("power: %d", p), nil
}
