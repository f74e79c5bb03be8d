// Package controller is the application service in front of the registry.
//
// It wraps a home.Home with context-aware operations. Each operation is
// applied to the home, then recorded in the journal. Publishing a report
// renders it once and fans it out to every configured sink, then records
// per-device telemetry.
//
// The controller owns the Home. It must be driven from a single goroutine;
// sinks and telemetry clients handle their own concurrency.
package controller
