package device

import "fmt"

// DefaultTemperature is the simulated reading of a thermometer.
const DefaultTemperature = 25

// Thermometer is a temperature sensor. It has no on/off state.
type Thermometer struct {
	name        string
	temperature int
}

// NewThermometer creates a thermometer with the default reading.
func NewThermometer(name string) (*Thermometer, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Thermometer{name: name, temperature: DefaultTemperature}, nil
}

func (*Thermometer) sealed() {}

// Name returns the thermometer name.
func (t *Thermometer) Name() string { return t.name }

// Kind returns KindThermometer.
func (*Thermometer) Kind() Kind { return KindThermometer }

// Temperature returns the current reading. It cannot fail.
func (t *Thermometer) Temperature() int { return t.temperature }

// Switch always fails: thermometers cannot be switched.
func (t *Thermometer) Switch() (string, error) {
	return "", fmt.Errorf("%w: thermometer %q", ErrSwitchOnOff, t.name)
}

// RenderState returns the report block for the thermometer.
func (t *Thermometer) RenderState() (string, error) {
	return fmt.Sprintf(">> Thermometer name is: %s\n>>>> Temperature is: %d\n", t.name, t.temperature), nil
}

// Summary returns "temperature: <degrees>".
func (t *Thermometer) Summary() (string, error) {
	return fmt.Sprintf("temperature: %d", t.temperature), nil
}
