package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Service is the entry point the host layer calls to persist and restore its state.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu       sync.RWMutex
	saves    int
	loads    int
	failures int
	lastErr  string
}

// NewService creates a new Service. A nil logger discards all records.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// SaveState persists doc, replacing whatever was stored before.
func (s *Service) SaveState(ctx context.Context, doc Document) (string, error) {
	if s.repo == nil {
		return "", errors.New("service has no repository")
	}

	confirmation, err := s.repo.Save(ctx, doc)
	s.record(&s.saves, err)
	if err != nil {
		s.logger.Error("save app state failed", "kind", KindOf(err), "error", err)
		return "", err
	}

	s.logger.Info("app state saved")
	return confirmation, nil
}

// LoadState returns the persisted document, or the default one on first run.
func (s *Service) LoadState(ctx context.Context) (Document, error) {
	if s.repo == nil {
		return nil, errors.New("service has no repository")
	}

	doc, err := s.repo.Load(ctx)
	s.record(&s.loads, err)
	if err != nil {
		s.logger.Error("load app state failed", "kind", KindOf(err), "error", err)
		return nil, err
	}

	s.logger.Debug("app state loaded")
	return doc, nil
}

// Watch forwards to the repository when it supports change notifications.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

func (s *Service) record(counter *int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*counter++
	if err != nil {
		s.failures++
		s.lastErr = err.Error()
	}
}
