package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Saves          int    `json:"saves"`
	Loads          int    `json:"loads"`
	Failures       int    `json:"failures"`
	LastError      string `json:"last_error,omitempty"`
	RepositoryType string `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	return ServiceState{
		Saves:          s.saves,
		Loads:          s.loads,
		Failures:       s.failures,
		LastError:      s.lastErr,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
