// Package log provides structured event logging for countdown timers.
//
// This package defines the Logger interface and Event types for capturing
// what happens to a timer: commands from the front end, state transitions,
// alarms and rejected input. It is separate from operational logging (slog):
// the event log is a machine-readable trace that the noodle-log tool can
// view, summarize and export.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	opts.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For a persistent trace: write to a binary file
//	opts.Logger, _ = log.NewFileLogger("timer.nlog")
//
//	// Both: use MultiLogger
//	opts.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys,
// conventionally using the .nlog extension.
package log
