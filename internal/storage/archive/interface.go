// internal/storage/archive/interface.go
package archive

import "context"

// Backend is a flat key/value blob store. The archiver layers the daily
// snapshot layout on top of it.
type Backend interface {
	// Write stores data at the given path, replacing any previous object.
	Write(ctx context.Context, path string, data []byte) error

	// Read retrieves data from the given path.
	Read(ctx context.Context, path string) ([]byte, error)

	// List returns all paths under the prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the object at the given path.
	Delete(ctx context.Context, path string) error

	// Exists checks whether an object exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)
}
