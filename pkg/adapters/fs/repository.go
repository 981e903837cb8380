package fs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/appstate/pkg/core"
)

// DefaultFileMode is the permission used when the state file is created.
const DefaultFileMode os.FileMode = 0o644

// Repository implements core.Repository on a single file.
// Writes are plain truncate-and-write: a crash mid-write may leave a partial file.
type Repository struct {
	Path       string
	config     Config
	serializer Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
	lastLoad      *time.Time
	defaulted     bool
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path     string
	FileMode os.FileMode
	ReadOnly bool
	Logger   *slog.Logger
	// Echo receives the serialized document before every write. Optional.
	Echo       io.Writer
	Serializer Serializer
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}
	if config.Serializer == nil {
		config.Serializer = NewYAMLSerializer()
	}
	return &Repository{
		Path:       config.Path,
		config:     config,
		serializer: config.Serializer,
	}
}

// Save encodes doc and replaces the state file with it.
// Encoding happens before the file is opened, so a Serialization error
// leaves the previous contents in place.
func (r *Repository) Save(ctx context.Context, doc core.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.config.ReadOnly {
		return "", core.ErrReadOnly
	}

	data, err := r.serializer.Serialize(doc)
	if err != nil {
		return "", core.NewError(core.KindSerialization, "encode", r.Path, err)
	}

	r.config.Logger.Debug("writing app state", "path", r.Path, "bytes", len(data))
	if r.config.Echo != nil {
		if _, err := r.config.Echo.Write(data); err != nil {
			r.config.Logger.Warn("echo failed", "error", err)
		}
	}

	if err := os.WriteFile(r.Path, data, r.config.FileMode); err != nil {
		return "", core.NewError(core.KindIO, "write", r.Path, err)
	}

	r.mu.Lock()
	now := time.Now()
	r.lastSave = &now
	r.mu.Unlock()

	return core.Confirmation, nil
}

// Load reads and decodes the state file.
// A missing file is not an error: the default document is returned instead.
func (r *Repository) Load(ctx context.Context) (core.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.config.Logger.Info("state file not found, using default", "path", r.Path)
			r.recordLoad(true)
			return core.DefaultDocument(), nil
		}
		return nil, core.NewError(core.KindIO, "read", r.Path, err)
	}

	doc, err := r.serializer.Parse(data)
	if err != nil {
		return nil, core.NewError(core.KindDeserialization, "decode", r.Path, err)
	}

	r.recordLoad(false)
	return doc, nil
}

func (r *Repository) recordLoad(defaulted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastLoad = &now
	r.defaulted = defaulted
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
