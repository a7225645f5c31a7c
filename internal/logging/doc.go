// Package logging constructs the application's slog loggers.
//
// It provides console and JSON handlers, level parsing, optional log-file
// output alongside stdout, attr helper functions so call sites avoid
// importing log/slog directly, and a no-op logger for tests.
package logging
