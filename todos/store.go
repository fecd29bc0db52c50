package todos

import (
	"context"

	"github.com/jameshuangoutlook/arkiviatodo/models"
)

// Store is the document-store port the repository runs against. The real
// implementation is Firestore (firestore.go); tests use an in-memory fake.
type Store interface {
	// ScanOwner lists every todo under one owner's partition. Results carry
	// their document id; the repository tags the owner.
	ScanOwner(ctx context.Context, ownerID string) ([]models.Todo, error)

	// ScanShared lists todos across all partitions whose sharedWith field
	// contains email (exact match, the way the store's containment filter
	// works). Results carry both document id and the owner derived from the
	// document path.
	ScanShared(ctx context.Context, email string) ([]models.Todo, error)

	// Get reads a single todo. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, ownerID, id string) (models.Todo, error)

	// Create writes a new todo under ownerID with a store-generated id and
	// returns that id.
	Create(ctx context.Context, ownerID string, todo models.Todo) (string, error)

	// Update applies a partial field update to one todo. Returns ErrNotFound
	// if the todo vanished before the write.
	Update(ctx context.Context, ownerID, id string, fields map[string]interface{}) error

	// Delete removes one todo. Returns ErrNotFound if it is already gone.
	Delete(ctx context.Context, ownerID, id string) error
}
