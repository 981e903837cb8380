package platform

import (
	"github.com/aretw0/appstate/pkg/adapters/fs"
	"github.com/aretw0/appstate/pkg/core"
)

// Init builds the repository backing the state file at path.
// An empty path selects DefaultPath.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	return initFS(path, o)
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(path string, o *options) (core.Repository, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("state store ready", "path", resolved, "read_only", o.readOnly)
	}

	return fs.NewRepository(fs.Config{
		Path:       resolved,
		FileMode:   o.fileMode,
		ReadOnly:   o.readOnly,
		Logger:     o.logger,
		Echo:       o.echo,
		Serializer: o.serializer,
	}), nil
}
