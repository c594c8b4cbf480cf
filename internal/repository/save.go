package repository

import (
	"context"
)

// Saves defines the interface for persisting serialized game documents under a key
type Saves interface {
	// Load returns the stored document or an error wrapping domain.ErrSaveNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	// Delete removes the document. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
