package appstate

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/appstate/internal/platform"
	"github.com/aretw0/appstate/pkg/adapters/fs"
	"github.com/aretw0/appstate/pkg/core"
	"github.com/aretw0/appstate/pkg/typed"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// DefaultPath is the state file used when no path is given.
const DefaultPath = platform.DefaultPath

// --- Types ---

// Document is the opaque application-state value.
type Document = core.Document

// TypedRepository is a public alias for the typed repository.
type TypedRepository[T any] = typed.Repository[T]

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithEcho sets the writer that receives the serialized document before each save.
func WithEcho(w io.Writer) Option {
	return platform.WithEcho(w)
}

// WithReadOnly makes every save fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithFileMode sets the permission used when the state file is created.
func WithFileMode(mode os.FileMode) Option {
	return platform.WithFileMode(mode)
}

// WithSerializer replaces the default YAML serializer.
func WithSerializer(s fs.Serializer) Option {
	return platform.WithSerializer(s)
}

// --- Factory ---

// New creates the state Service for the file at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init creates the repository for the file at path without the service layer.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// OpenTypedRepository simplifies creating a TypedRepository from a path.
func OpenTypedRepository[T any](path string, opts ...Option) (*TypedRepository[T], error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}
	return typed.NewRepository[T](repo), nil
}

// --- Utils ---

// DefaultDocument returns the document Load yields when nothing is stored.
func DefaultDocument() Document {
	return core.DefaultDocument()
}

// ResolvePath returns the absolute state file path for a configured one.
func ResolvePath(path string) (string, error) {
	return platform.ResolvePath(path)
}
