// Package contract provides configuration, interfaces and shared utilities
// for the stackrank internals.
package contract

// SnapshotStore defines durable storage for computed metrics snapshots, keyed
// by a content hash of the filtered input. This allows the expensive-path
// memoization to be mocked for testing.
type SnapshotStore interface {
	// Get returns the stored JSON snapshot for a key, with ok=false on miss.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores the JSON snapshot for a key, replacing any previous value.
	Set(key string, value []byte, createdAt int64) error

	// Count returns the number of stored snapshots.
	Count() (int, error)

	// Clear removes all stored snapshots.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}
