// Package preflight checks the filesystem before a program is written.
//
// RunAll covers the output directory, the optional content catalog, and the
// output lock. The artifact writer calls CheckDirectoryAccess directly so a
// missing destination surfaces as an I/O error before any encoding work is
// committed to disk.
package preflight
