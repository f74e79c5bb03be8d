// Package mqtt provides a publishing MQTT client for the smarthome binary.
//
// The client wraps paho.mqtt.golang and is used to push rendered home
// reports to a broker as retained messages, so dashboards that subscribe
// later still see the latest report.
//
// Connection lifecycle:
//   - Connect publishes {"status":"online"} retained on smarthome/system/status
//   - A Last Will publishes {"status":"offline","reason":"unexpected_disconnect"}
//     if the process dies without closing the client
//   - Close publishes {"status":"offline","reason":"graceful_shutdown"}
//
// Usage:
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	err = client.PublishRetained(mqtt.Topics{}.Report("my-home"), []byte(report))
package mqtt
