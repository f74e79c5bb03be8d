package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/p0sel0k/hw3/internal/audit"
	"github.com/p0sel0k/hw3/internal/device"
	"github.com/p0sel0k/hw3/internal/home"
	"github.com/p0sel0k/hw3/internal/report"
)

// ErrInvalidDeps is returned by New when a required dependency is missing.
var ErrInvalidDeps = errors.New("controller: invalid dependencies")

// temperatureMeasurement is the device metric name for thermometer readings.
const temperatureMeasurement = "temperature_c"

// Logger defines the logging interface used by the controller.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Telemetry records device readings. Implemented by *influxdb.Client.
type Telemetry interface {
	WriteDeviceMetric(deviceID, measurement string, value float64)
	WriteEnergyMetric(deviceID string, powerWatts, energyKWh float64)
}

// Deps holds the controller's collaborators. Home and Logger are required;
// the rest are optional.
type Deps struct {
	Home      *home.Home
	Journal   audit.Repository
	Sinks     []report.Sink
	Telemetry Telemetry
	Logger    Logger
}

// Controller applies registry operations and records their outcome.
type Controller struct {
	home      *home.Home
	journal   audit.Repository
	sinks     []report.Sink
	telemetry Telemetry
	logger    Logger
}

// New creates a controller.
func New(deps Deps) (*Controller, error) {
	if deps.Home == nil {
		return nil, fmt.Errorf("%w: home is required", ErrInvalidDeps)
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("%w: logger is required", ErrInvalidDeps)
	}
	return &Controller{
		home:      deps.Home,
		journal:   deps.Journal,
		sinks:     deps.Sinks,
		telemetry: deps.Telemetry,
		logger:    deps.Logger,
	}, nil
}

// Home returns the controlled home for read-only inspection.
func (c *Controller) Home() *home.Home {
	return c.home
}

// AddRoom creates an empty room and inserts it, replacing any room with the
// same name. It returns the home's insert message.
func (c *Controller) AddRoom(ctx context.Context, name string) (string, error) {
	entry := &audit.Entry{Action: audit.ActionAddRoom, EntityType: audit.EntityRoom, EntityName: name, Room: name}

	room, err := home.NewRoom(name)
	if err != nil {
		c.record(ctx, entry, err)
		return "", err
	}

	msg, err := c.home.AddRoom(room)
	if err != nil {
		c.record(ctx, entry, err)
		return "", err
	}
	entry.Details = map[string]any{"message": msg}
	c.record(ctx, entry, nil)
	return msg, nil
}

// RemoveRoom detaches the named room and its devices.
func (c *Controller) RemoveRoom(ctx context.Context, name string) (*home.Room, error) {
	room, err := c.home.RemoveRoom(name)
	entry := &audit.Entry{Action: audit.ActionRemoveRoom, EntityType: audit.EntityRoom, EntityName: name, Room: name}
	if err == nil {
		entry.Details = map[string]any{"devices": room.Len()}
	}
	c.record(ctx, entry, err)
	return room, err
}

// AddDevice inserts d into the named room.
func (c *Controller) AddDevice(ctx context.Context, roomName string, d device.Device) (device.Device, error) {
	entry := &audit.Entry{Action: audit.ActionAddDevice, EntityType: audit.EntityDevice, Room: roomName}
	if d != nil {
		entry.EntityName = d.Name()
		entry.Details = map[string]any{"kind": string(d.Kind())}
	}

	added, err := c.home.AddDevice(roomName, d)
	c.record(ctx, entry, err)
	return added, err
}

// RemoveDevice detaches the named device from the named room.
func (c *Controller) RemoveDevice(ctx context.Context, roomName, deviceName string) (device.Device, error) {
	d, err := c.home.RemoveDevice(roomName, deviceName)
	c.record(ctx, &audit.Entry{
		Action:     audit.ActionRemoveDevice,
		EntityType: audit.EntityDevice,
		EntityName: deviceName,
		Room:       roomName,
	}, err)
	return d, err
}

// SwitchDevice toggles the named device and returns its prior state label.
func (c *Controller) SwitchDevice(ctx context.Context, roomName, deviceName string) (string, error) {
	prev, err := c.home.SwitchDevice(roomName, deviceName)
	entry := &audit.Entry{
		Action:     audit.ActionSwitchDevice,
		EntityType: audit.EntityDevice,
		EntityName: deviceName,
		Room:       roomName,
	}
	if err == nil {
		entry.Details = map[string]any{"previous": prev}
	}
	c.record(ctx, entry, err)
	return prev, err
}

// PublishReport renders the report and delivers it to every sink.
//
// A render failure is returned as is and nothing is published. Sink
// failures do not stop delivery to the remaining sinks; they are joined
// and returned together with the report. Telemetry is written only after a
// successful render.
func (c *Controller) PublishReport(ctx context.Context) (string, error) {
	entry := &audit.Entry{Action: audit.ActionReport, EntityType: audit.EntityHome, EntityName: c.home.Name()}

	text, err := c.home.GenerateReport()
	if err != nil {
		c.record(ctx, entry, err)
		return "", err
	}

	var errs []error
	delivered := 0
	for _, sink := range c.sinks {
		if err := sink.Publish(ctx, text); err != nil {
			c.logger.Error("report sink failed", "sink", sink.Name(), "error", err)
			errs = append(errs, fmt.Errorf("sink %s: %w", sink.Name(), err))
			continue
		}
		delivered++
	}

	c.writeTelemetry()

	sinkErr := errors.Join(errs...)
	entry.Details = map[string]any{"sinks": len(c.sinks), "delivered": delivered}
	c.record(ctx, entry, sinkErr)
	return text, sinkErr
}

// writeTelemetry records one reading per device that has one.
func (c *Controller) writeTelemetry() {
	if c.telemetry == nil {
		return
	}
	c.home.Walk(func(r *home.Room, d device.Device) {
		id := r.Name() + "/" + d.Name()
		switch v := d.(type) {
		case *device.Socket:
			power, err := v.Power()
			if err != nil {
				return
			}
			c.telemetry.WriteEnergyMetric(id, float64(power), 0)
		case *device.Thermometer:
			c.telemetry.WriteDeviceMetric(id, temperatureMeasurement, float64(v.Temperature()))
		}
	})
}

// record journals the outcome of an operation. Journal failures are logged
// and never affect the operation.
func (c *Controller) record(ctx context.Context, entry *audit.Entry, opErr error) {
	if opErr != nil {
		entry.Outcome = audit.OutcomeFailure
		entry.Error = opErr.Error()
		c.logger.Warn("operation failed", "action", entry.Action, "room", entry.Room, "entity", entry.EntityName, "error", opErr)
	} else {
		entry.Outcome = audit.OutcomeSuccess
		c.logger.Debug("operation applied", "action", entry.Action, "room", entry.Room, "entity", entry.EntityName)
	}

	if c.journal == nil {
		return
	}
	if err := c.journal.Create(ctx, entry); err != nil {
		c.logger.Error("journal write failed", "action", entry.Action, "error", err)
	}
}
