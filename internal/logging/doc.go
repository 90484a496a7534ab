// Package logging constructs the slog loggers used across the tool.
//
// Two handler formats exist: a human-oriented console handler with ANSI level
// colors (enabled only when writing to a terminal) and a machine-oriented
// JSON handler. Verbosity and format come from CLI flags.
package logging
