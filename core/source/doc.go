// Package source pulls tabular snapshots straight out of SQL databases.
//
// Registry exports do not always arrive as files: the same data often lives
// in an analytics database that can be queried directly. This package turns
// an arbitrary query result into a snapshot table, with every cell read as
// text and SQL NULL mapped to the empty string so the result is comparable
// to file-loaded snapshots.
//
// # Drivers
//
// Connections go through database/sql, so any linked driver works. The
// binary registers postgres, mysql, sqlserver and oracle drivers; when the
// configuration does not name one, DetectDriver infers it from the DSN
// shape.
//
// # Progress
//
// Pull accepts an optional per-row callback so long-running pulls can feed a
// progress display without this package knowing anything about terminals.
package source
