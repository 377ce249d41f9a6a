// Package store provides the key-value blob store that record collections
// persist into. A slot is a named blob holding one serialized collection;
// every save replaces the slot wholesale. Backends: in-memory, file-backed,
// and redis. Multiple processes sharing one backend are not synchronized —
// last writer wins.
package store

import "context"

// Store is the persistence contract for record slots.
//
// Load returns (nil, nil) for a slot that has never been written; callers
// treat that as an empty collection. Save replaces the slot's entire
// content. Failures are returned as errors, never panics.
type Store interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, data []byte) error
	Has(ctx context.Context, slot string) (bool, error)
	Delete(ctx context.Context, slot string) error
}
