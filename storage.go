package tinysearch

import "errors"

// ErrSnapshotNotFound is returned by LoadSnapshot when no snapshot has been
// saved under the requested name.
var ErrSnapshotNotFound = errors.New("snapshot not found")

//go:generate mockgen -source=storage.go -destination=mock_storage.go -package=tinysearch

// Storage persists exported snapshots for collaborators that need the index
// to survive the process (the engine itself never touches storage).
type Storage interface {
	SaveSnapshot(name string, snapshot Snapshot) error // upserts the snapshot under name
	LoadSnapshot(name string) (Snapshot, error)        // returns ErrSnapshotNotFound when absent
}
