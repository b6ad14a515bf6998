// Package storage archives master dataset snapshots in S3-compatible
// object storage.
//
// # Layout
//
// Each profile owns a key prefix inside the configured bucket. A
// snapshot pushed for profile slug "clia_labs" at 2026-08-21 09:30:00
// is stored as:
//
//	clia_labs/20260821T093000.csv
//
// The timestamp layout sorts lexically in capture order, so listing a
// prefix yields the profile's history oldest first and the last entry
// is always the most recent snapshot.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	if err != nil {
//		return err
//	}
//	archive := storage.NewArchive(client, cfg.Bucket)
//	if err := archive.EnsureBucket(ctx); err != nil {
//		return err
//	}
//	key, err := archive.Push(ctx, "clia_labs", time.Now(), file, size)
//
// Latest returns ErrNoSnapshots when a profile has never been pushed,
// and Prune trims a profile's history down to its newest snapshots,
// never removing the last one.
package storage
