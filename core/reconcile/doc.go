// Package reconcile classifies an incoming tabular snapshot against a master
// snapshot and derives the next master.
//
// Given two tables that share a comparison key, the package splits their
// rows into three buckets:
//
//   - added: incoming rows whose key is absent from the master
//   - removed: master rows whose key is absent from the incoming snapshot
//   - unchanged: master rows whose key appears on both sides
//
// The next master is added followed by unchanged, so it holds exactly the
// rows still alive in the incoming world while keeping master-side cell
// content for rows that persist across runs.
//
// # Keys
//
// The comparison key is any non-empty list of column names present in both
// tables. Rows pair by trimmed string equality over the key cells only, with
// no numeric coercion; keying on every column turns the classification into
// a whole-row diff. A key column missing from either side fails with
// *InvalidKeyError before any join work begins.
//
// # Duplicates
//
// Tables are multisets. A key carried by m master rows and n incoming rows
// pairs like an outer join and yields m*n unchanged rows, while unmatched
// rows keep their source multiplicity. Buckets preserve input row order:
// added in incoming order, removed and unchanged in master order.
//
// # Usage
//
//	result, err := reconcile.Reconcile(master, incoming, []string{"CLIA"})
//	if err != nil {
//	    return err
//	}
//	log.Info("classified",
//	    zap.Int("added", result.Summary.Added),
//	    zap.Int("removed", result.Summary.Removed))
//
// Reconcile is a pure function over two in-memory tables: no I/O, no
// retries, no partial results. Presentation (display caps, banners, file
// naming) lives in core/report and core/csvio.
package reconcile
