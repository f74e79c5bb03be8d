package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names.
const (
	measurementDevice = "device_metrics"
	measurementEnergy = "energy"
)

// WriteDeviceMetric records a single reading such as "temperature_c".
// The write is batched; it is a no-op on a closed client.
func (c *Client) WriteDeviceMetric(deviceID, measurement string, value float64) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(deviceMetricPoint(deviceID, measurement, value, time.Now()))
}

// WriteEnergyMetric records the current power draw of a device.
// energyKWh is omitted when zero.
func (c *Client) WriteEnergyMetric(deviceID string, powerWatts, energyKWh float64) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(energyPoint(deviceID, powerWatts, energyKWh, time.Now()))
}

func deviceMetricPoint(deviceID, measurement string, value float64, ts time.Time) *write.Point {
	return write.NewPoint(
		measurementDevice,
		map[string]string{
			"device_id":   deviceID,
			"measurement": measurement,
		},
		map[string]any{
			"value": value,
		},
		ts,
	)
}

func energyPoint(deviceID string, powerWatts, energyKWh float64, ts time.Time) *write.Point {
	fields := map[string]any{
		"power_watts": powerWatts,
	}
	if energyKWh > 0 {
		fields["energy_kwh"] = energyKWh
	}
	return write.NewPoint(
		measurementEnergy,
		map[string]string{"device_id": deviceID},
		fields,
		ts,
	)
}
