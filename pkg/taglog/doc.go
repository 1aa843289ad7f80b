// Package taglog provides structured event capture for tag registries.
//
// This package defines the Logger interface and Event types for recording
// registry activity: tag lifecycle (create/delete), value changes detected
// by reads, and rejected writes. It is separate from operational logging
// (slog) - event capture provides a complete machine-readable trace of what
// the registry observed, suitable for replay and analysis.
//
// # Basic Usage
//
// Attach a Logger implementation to a registry:
//
//	// For development: log to console via slog
//	reg.SetLogger(taglog.NewSlogAdapter(slog.Default()))
//
//	// For production: write to binary file
//	fl, _ := taglog.NewFileLogger("/var/log/tags/plant.tlog")
//	reg.SetLogger(fl)
//
//	// Both: use MultiLogger
//	reg.SetLogger(taglog.NewMultiLogger(
//	    taglog.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with integer keys and
// use the .tlog extension. Reader reads them back with optional filtering.
package taglog
