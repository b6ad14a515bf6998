// Package sample generates synthetic datasets for trying out the
// reconciler without real registry exports.
//
// Generate produces a fresh master dataset for a profile; Derive turns
// an existing master into a plausible next release by dropping some rows
// and adding new ones, so reconciling the pair yields known counts.
// Both are deterministic for a given seed.
package sample
