package core

import "context"

// Repository defines the contract for persisting the application state.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism.
type Repository interface {
	// Save replaces the persisted document wholesale and returns a confirmation.
	Save(ctx context.Context, doc Document) (string, error)

	// Load returns the persisted document, or DefaultDocument when none exists.
	Load(ctx context.Context) (Document, error)
}

// Watchable is implemented by repositories that can report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
