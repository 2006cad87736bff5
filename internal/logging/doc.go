// Package logging builds slog loggers for the op3d CLI and HTTP API.
//
// Two output formats are supported: a human-oriented console format with
// key=value attributes, and line-delimited JSON for machine consumption.
// Log output can be mirrored to a file under the configured log directory.
package logging
