// Package reconcileapi exposes dataset reconciliation over HTTP.
//
// Clients post a master and an incoming dataset and receive every row
// classified as added, removed or unchanged, together with the next
// master dataset. Column layouts and comparison keys come from dataset
// profiles, which the API also lists.
//
// # HTTP Endpoints
//
//   - POST /reconcile : Reconcile a master dataset against an incoming one.
//   - GET /profiles : List the available dataset profiles.
//   - GET /runs : List the newest recorded runs (requires the history database).
//   - GET /health : Liveness check.
//
// Each successful reconciliation is recorded in the run history database
// when one is connected; history failures never fail the request.
package reconcileapi
