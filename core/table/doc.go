// Package table defines the in-memory tabular snapshot model shared by every
// stage of the reconciliation pipeline.
//
// A Table couples an ordered column list with row-major string cells. All
// cell values are strings: sources are delimited text and row identity is
// defined over trimmed string equality, so the model never coerces values
// into numeric or temporal types.
//
// # Immutability
//
// Tables behave as values. Normalize, Filter and Concat return fresh Tables
// and never mutate their inputs, which keeps the pipeline stages (load,
// normalize, filter, reconcile, write) freely composable and safe to run
// concurrently over shared snapshots.
//
// # Duplicates
//
// A Table is a sequence, not a set. Duplicate rows are legal and their
// multiplicity and relative order survive every transformation in this
// package.
package table
