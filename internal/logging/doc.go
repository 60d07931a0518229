// Package logging assembles the slog loggers used by workoutgen.
//
// Output is either a single-line console format or JSON, always routed away
// from stdout so the run summary stays clean. Context helpers tag lines with
// the run identifier, and NewNop gives tests and optional wiring a logger that
// cannot fail.
package logging
