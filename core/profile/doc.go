// Package profile describes reconcilable datasets as explicit configuration.
//
// Historically each dataset shipped as its own near-identical script with a
// hardcoded column list, comparison key and filter. A Profile captures those
// differences as data so one reconciler serves every dataset:
//
//   - Columns: the declared schema applied to master and incoming sources
//   - Key: the ordered column subset that defines row identity
//   - Header conventions for each side
//   - An optional allow-list filter applied to both sides before comparison
//
// Built-in profiles cover the CLIA laboratory registry; additional profiles
// load from the configuration file and are resolved by name at run time.
package profile
