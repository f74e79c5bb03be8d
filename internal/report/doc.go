// Package report delivers rendered home reports to their destinations.
//
// A Sink receives the report text produced by home.Home.GenerateReport and
// writes it somewhere: a console stream, a file, an MQTT topic, or the
// in-memory Snapshot served by the HTTP API. Sinks only ever see strings;
// they never touch the registry.
package report
