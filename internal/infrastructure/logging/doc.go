// Package logging provides structured logging for the smarthome binary.
//
// It wraps log/slog so every component logs through the same handler with
// the same default fields (service, version).
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stderr"   # stdout, stderr
//
// Logs default to stderr so that reports written to stdout stay clean.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, version)
//	logger.Info("home seeded", "rooms", 2)
//	homeLogger := logger.With("component", "home")
package logging
