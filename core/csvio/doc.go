// Package csvio loads and writes tabular snapshots as comma-separated text.
//
// The loader works against a declared column list rather than trusting file
// headers: a master snapshot usually carries a header row that is discarded
// after a width check, while incremental drops are headerless. Either way the
// declared columns become the table schema, which keeps snapshots from
// different eras comparable even when their header spelling drifted.
//
// # Malformed input
//
// Any record whose field count differs from the declared column list, and
// any file that cannot be read or parsed, surfaces as a *MalformedInputError
// carrying the source path and the offending record number. Loading stops at
// the first such record; a partially loaded table is never returned.
//
// # Multiple sources
//
// LoadSources reads a list of files concurrently and concatenates them in
// argument order, so a reconciliation run can treat a week of daily drops as
// one incoming snapshot.
//
// # Output naming
//
// OutputName produces the canonical "<slug>_<bucket>.csv" name for a result
// bucket, optionally stamped with the run time in UTC so successive runs do
// not overwrite each other.
package csvio
