package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/minio/minio-go/v7"
)

// ErrNoSnapshots is returned when a profile has no archived snapshots.
var ErrNoSnapshots = errors.New("storage: no snapshots archived for profile")

// snapshotTimeFormat orders keys lexically by capture time.
const snapshotTimeFormat = "20060102T150405"

// Snapshot describes one archived master dataset.
type Snapshot struct {
	// Key is the object key inside the bucket.
	Key string `json:"key"`
	// Size is the object size in bytes.
	Size int64 `json:"size"`
	// LastModified is when the object was stored.
	LastModified time.Time `json:"last_modified"`
}

// SnapshotKey builds the object key for a profile snapshot taken at the
// given time. Keys share a per-profile prefix so listing a profile's
// history is a single prefixed scan, and the timestamp layout sorts
// lexically in capture order.
func SnapshotKey(slug string, at time.Time) string {
	return fmt.Sprintf("%s/%s.csv", slug, at.Format(snapshotTimeFormat))
}

// Archive stores and retrieves master dataset snapshots in a bucket.
type Archive struct {
	client Client
	bucket string
}

// NewArchive creates an archive over the given client and bucket.
func NewArchive(client Client, bucket string) *Archive {
	return &Archive{client: client, bucket: bucket}
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", a.bucket, err)
	}
	return nil
}

// Push archives a snapshot for the profile, keyed by capture time.
// It returns the object key the snapshot was stored under.
func (a *Archive) Push(ctx context.Context, slug string, at time.Time, r io.Reader, size int64) (string, error) {
	key := SnapshotKey(slug, at)
	_, err := a.client.PutObject(ctx, a.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive snapshot %q: %w", key, err)
	}
	return key, nil
}

// List returns the profile's snapshots ordered oldest first.
func (a *Archive) List(ctx context.Context, slug string) ([]Snapshot, error) {
	objects := a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    slug + "/",
		Recursive: true,
	})

	var snapshots []Snapshot
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots for %q: %w", slug, obj.Err)
		}
		snapshots = append(snapshots, Snapshot{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Key < snapshots[j].Key
	})
	return snapshots, nil
}

// Latest returns the profile's most recent snapshot.
func (a *Archive) Latest(ctx context.Context, slug string) (Snapshot, error) {
	snapshots, err := a.List(ctx, slug)
	if err != nil {
		return Snapshot{}, err
	}
	if len(snapshots) == 0 {
		return Snapshot{}, ErrNoSnapshots
	}
	return snapshots[len(snapshots)-1], nil
}

// Pull opens the snapshot stored under the given key. The caller owns
// the returned reader and must close it.
func (a *Archive) Pull(ctx context.Context, key string) (io.ReadCloser, error) {
	object, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot %q: %w", key, err)
	}
	return object, nil
}

// Prune removes the profile's oldest snapshots, keeping the newest
// `keep` of them. At least one snapshot is always kept. It returns the
// keys that were removed.
func (a *Archive) Prune(ctx context.Context, slug string, keep int) ([]string, error) {
	if keep < 1 {
		keep = 1
	}
	snapshots, err := a.List(ctx, slug)
	if err != nil {
		return nil, err
	}
	if len(snapshots) <= keep {
		return nil, nil
	}

	var removed []string
	for _, snap := range snapshots[:len(snapshots)-keep] {
		if err := a.client.RemoveObject(ctx, a.bucket, snap.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("failed to prune snapshot %q: %w", snap.Key, err)
		}
		removed = append(removed, snap.Key)
	}
	return removed, nil
}
