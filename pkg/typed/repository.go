// Package typed offers a statically-typed view over the opaque state document
// for hosts that prefer a Go struct to a map tree.
package typed

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/appstate/pkg/core"
)

// Repository wraps a core.Repository to provide type-safe access.
// T is converted through YAML, so its yaml struct tags define the field names.
type Repository[T any] struct {
	repo core.Repository
}

// NewRepository creates a new type-safe wrapper around an existing repository.
func NewRepository[T any](repo core.Repository) *Repository[T] {
	return &Repository[T]{repo: repo}
}

// Save persists state, replacing the stored document.
func (r *Repository[T]) Save(ctx context.Context, state *T) (string, error) {
	if state == nil {
		return "", fmt.Errorf("typed state is nil")
	}
	return r.repo.Save(ctx, state)
}

// Load returns the stored document decoded into T.
// When nothing has been stored, T is filled from core.DefaultDocument.
func (r *Repository[T]) Load(ctx context.Context) (*T, error) {
	doc, err := r.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Decode[T](doc)
}

// Decode converts a dynamic document into T.
func Decode[T any](doc core.Document) (*T, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, core.NewError(core.KindDeserialization, "convert", "", err)
	}

	var out T
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, core.NewError(core.KindDeserialization, "convert", "", fmt.Errorf("into %T: %w", out, err))
	}
	return &out, nil
}
