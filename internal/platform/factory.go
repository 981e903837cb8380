package platform

import (
	"github.com/aretw0/appstate/pkg/core"
)

// New creates the service the host layer calls.
//
//	svc, err := appstate.New("../appdata.yaml", appstate.WithLogger(logger))
func New(path string, opts ...Option) (*core.Service, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	// We also need to parse options here to get the logger for wiring
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, o.logger), nil
}
