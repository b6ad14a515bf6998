// Package history keeps a ledger of reconciliation runs.
//
// Every run records the profile, the consumed inputs and the resulting
// bucket sizes, keyed by a generated run ID. The ledger answers "when did
// the master last change and by how much" without re-reading old output
// files.
//
// Recording is optional: commands that cannot reach the configured database
// warn and continue, since the reconciliation result itself never depends on
// the ledger.
package history
