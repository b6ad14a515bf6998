package models

import (
	"dataset-reconciler/core/reconcile"
	"dataset-reconciler/core/table"
)

// TablePayload carries a dataset over the wire.
type TablePayload struct {
	// Columns names the dataset's columns in order.
	Columns []string `json:"columns"`
	// Rows holds the data records, one cell per column.
	Rows [][]string `json:"rows"`
}

// Table converts the payload into a validated table.
func (p TablePayload) Table() (table.Table, error) {
	return table.New(p.Columns, p.Rows)
}

// FromTable converts a table into its wire form.
func FromTable(t table.Table) TablePayload {
	return TablePayload{Columns: t.Columns, Rows: t.Rows}
}

// ReconcileRequest is the payload for a reconciliation call.
type ReconcileRequest struct {
	// Profile names the dataset profile to reconcile under. Empty means
	// the server's default profile.
	Profile string `json:"profile,omitempty"`
	// Key overrides the profile's comparison key when set.
	Key []string `json:"key,omitempty"`
	// Master is the current master dataset.
	Master TablePayload `json:"master"`
	// Incoming is the dataset to compare the master against.
	Incoming TablePayload `json:"incoming"`
}

// ReconcileResponse carries the full reconciliation result.
type ReconcileResponse struct {
	// Profile is the profile the datasets were reconciled under.
	Profile string `json:"profile"`
	// Summary counts the rows in each bucket.
	Summary reconcile.Summary `json:"summary"`
	// Added holds rows present only in the incoming dataset.
	Added TablePayload `json:"added"`
	// Removed holds rows present only in the master dataset.
	Removed TablePayload `json:"removed"`
	// Unchanged holds rows present in both datasets.
	Unchanged TablePayload `json:"unchanged"`
	// NewMaster holds the next master dataset.
	NewMaster TablePayload `json:"new_master"`
}
