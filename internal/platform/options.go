package platform

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/appstate/pkg/adapters/fs"
	"github.com/aretw0/appstate/pkg/core"
)

// options holds the internal configuration for the state store.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	echo       io.Writer
	readOnly   bool
	fileMode   os.FileMode
	serializer fs.Serializer
}

// Option defines a functional option for configuring the state store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		fileMode: fs.DefaultFileMode,
	}
}

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithEcho sets the writer that receives the serialized document before each save.
func WithEcho(w io.Writer) Option {
	return func(o *options) {
		o.echo = w
	}
}

// WithReadOnly makes Save return core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithFileMode sets the permission used when the state file is created.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithSerializer replaces the default YAML serializer.
func WithSerializer(s fs.Serializer) Option {
	return func(o *options) {
		o.serializer = s
	}
}
