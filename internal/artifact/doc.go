// Package artifact turns a program.Program into the file other tools read.
//
// The JSON form is byte-stable: week and day keys appear in numeric order,
// two-space indentation, ": " separators, literal non-ASCII text and no
// trailing newline. YAML is offered as an alternate encoding with the same
// key order. WriteProgram validates and encodes before touching disk, checks
// the destination directory, optionally takes "<dest>.lock", and replaces the
// destination atomically. Failures carry ErrIO or ErrSerialization.
//
// Verify re-reads artifact bytes and reports structural, replication,
// round-trip and day-layout checks for the verify command.
package artifact
