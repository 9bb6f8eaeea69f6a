package storage

import "context"

// Collection names. Records are keyed JSON documents, one namespace per
// entity kind.
const (
	CollectionFolders      = "folders"
	CollectionFlashcards   = "flashcards"
	CollectionSettings     = "settings"
	CollectionGamification = "gamification"
)

// Store is the persistence collaborator: four operations over named
// collections of keyed records. Get returns (nil, nil) when the key is
// absent; Delete is idempotent. A completed Put is durable.
type Store interface {
	GetAll(ctx context.Context, collection string) ([][]byte, error)
	Get(ctx context.Context, collection, key string) ([]byte, error)
	Put(ctx context.Context, collection, key string, data []byte) error
	Delete(ctx context.Context, collection, key string) error
}

// Resetter wipes every collection at once. Kept out of Store so normal
// consumers cannot reach it.
type Resetter interface {
	Reset(ctx context.Context) error
}
