package ports

// KeyValueStore is the flat persistence substrate backing the virtual
// filesystem. Keys are namespaced by the caller.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set stores a single value.
	Set(key, value string) error

	// SetMany stores all pairs as one atomic step.
	SetMany(pairs map[string]string) error

	// Delete removes a key. Missing keys are not an error.
	Delete(key string) error

	// Close releases the underlying storage.
	Close() error
}
