package reconcile

import "dataset-reconciler/core/table"

// Result bundles the classified buckets of one reconciliation run.
// Every bucket is a valid Table even when it holds no rows, so an empty
// classification is a reportable state rather than an error.
type Result struct {
	// Added holds incoming rows whose key is absent from the master,
	// in incoming order, with incoming-side columns.
	Added table.Table `json:"added"`

	// Removed holds master rows whose key is absent from the incoming
	// snapshot, in master order, with master-side columns.
	Removed table.Table `json:"removed"`

	// Unchanged holds master rows whose key appears on both sides, in
	// master order. Cell content comes from the master side so auxiliary
	// tracking columns survive across runs.
	Unchanged table.Table `json:"unchanged"`

	// NewMaster is the derived next master snapshot: added rows first,
	// then unchanged rows, densely ordered.
	NewMaster table.Table `json:"new_master"`

	// Summary provides aggregate row counts for reporting.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate row counts for a reconciliation run.
type Summary struct {
	// MasterRows is the master snapshot size after normalization.
	MasterRows int `json:"master_rows"`

	// IncomingRows is the incoming snapshot size after normalization.
	IncomingRows int `json:"incoming_rows"`

	// Added counts rows present only in the incoming snapshot.
	Added int `json:"added"`

	// Removed counts rows present only in the master snapshot.
	Removed int `json:"removed"`

	// Unchanged counts row pairings present in both snapshots.
	Unchanged int `json:"unchanged"`

	// NewMaster counts rows in the derived next master snapshot.
	NewMaster int `json:"new_master"`
}
