// Package main hosts the workoutgen CLI entrypoint and command graph.
//
// Running the binary with no subcommand generates the program file using the
// resolved configuration. Subcommands verify an existing artifact and
// scaffold or validate configuration. Generation itself lives in the internal
// packages; this package resolves configuration, applies flag overrides, sets
// up logging, and prints the run summary.
package main
