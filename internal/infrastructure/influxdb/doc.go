// Package influxdb records device telemetry in InfluxDB.
//
// It wraps influxdb-client-go v2 with a non-blocking, batched write API.
// Each published home report produces one point per reportable device:
// an "energy" point for a switched-on socket and a "device_metrics" point
// for a thermometer reading.
//
// Usage:
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteDeviceMetric("first/t1", "temperature_c", 25)
//	client.WriteEnergyMetric("first/socket1", 220, 0)
//
// Writes are asynchronous; failures are delivered to the SetOnError callback.
package influxdb
