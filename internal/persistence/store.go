package persistence

import "context"

// BlobStore is the key/value JSON persistence seam the repositories build
// on. GetJSON reports absence through the boolean so callers can apply their
// own fallbacks; SetJSON is last-write-wins per key with no transactional
// guarantees beyond that.
type BlobStore interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}
