// Package store provides the persistent key-value store backing the
// session manager and the product registry. Each record is a single
// serialized value under a well-known key.
package store

// Store reads and writes named records.
type Store interface {
	// Read returns the value for key. The boolean reports whether the
	// record exists; a missing record is not an error.
	Read(key string) (string, bool, error)
	// Write creates or replaces the record for key.
	Write(key, value string) error
	// Delete removes the record for key. Deleting a missing record is a no-op.
	Delete(key string) error
}

// Well-known record keys.
const (
	KeyUser     = "user"
	KeyProducts = "products"
)
