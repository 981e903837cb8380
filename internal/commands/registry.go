// Package commands exposes the state store to the host UI as named procedures.
//
// The host invokes a procedure by name with JSON arguments and receives either
// a JSON-encodable result or an error whose message it treats as opaque text.
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"

	"github.com/aretw0/appstate/pkg/core"
)

// Procedure names understood by the host.
//
// read_app_state returns JSON null when the state file exists but is empty;
// only a missing file yields the default mapping.
const (
	WriteAppState = "write_app_state"
	ReadAppState  = "read_app_state"
)

// Handler runs one procedure.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// StateService is the part of core.Service the procedures need.
type StateService interface {
	SaveState(ctx context.Context, doc core.Document) (string, error)
	LoadState(ctx context.Context) (core.Document, error)
}

// Registry maps procedure names to handlers.
type Registry struct {
	handlers map[string]Handler
	logger   *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger discards all records.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register adds or replaces the handler for name.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Names returns the registered procedure names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the procedure called name.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}

	r.logger.Debug("invoke", "command", name, "args_bytes", len(args))
	result, err := h(ctx, args)
	if err != nil {
		r.logger.Debug("invoke failed", "command", name, "error", err)
		return nil, err
	}
	return result, nil
}

// RegisterStateCommands installs write_app_state and read_app_state backed by svc.
func RegisterStateCommands(r *Registry, svc StateService) {
	r.Register(WriteAppState, func(ctx context.Context, args json.RawMessage) (any, error) {
		var payload map[string]json.RawMessage
		if err := json.Unmarshal(args, &payload); err != nil {
			return nil, fmt.Errorf("invalid arguments for %s: %w", WriteAppState, err)
		}
		raw, ok := payload["state"]
		if !ok {
			return nil, fmt.Errorf("invalid arguments for %s: state is required", WriteAppState)
		}

		state, err := decodeState(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid arguments for %s: %w", WriteAppState, err)
		}
		return svc.SaveState(ctx, state)
	})

	r.Register(ReadAppState, func(ctx context.Context, _ json.RawMessage) (any, error) {
		doc, err := svc.LoadState(ctx)
		if err != nil {
			return nil, err
		}
		return core.Normalize(doc), nil
	})
}

// decodeState decodes a JSON document keeping integers exact:
// json.Number values become int64 or uint64 when integral, float64 otherwise.
func decodeState(raw json.RawMessage) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var state any
	if err := decoder.Decode(&state); err != nil {
		return nil, err
	}
	return convertNumbers(state)
}

func convertNumbers(v any) (any, error) {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(val.String(), 10, 64); err == nil {
			return u, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s out of range: %w", val, err)
		}
		return f, nil
	case map[string]any:
		for k, item := range val {
			converted, err := convertNumbers(item)
			if err != nil {
				return nil, err
			}
			val[k] = converted
		}
		return val, nil
	case []any:
		for i, item := range val {
			converted, err := convertNumbers(item)
			if err != nil {
				return nil, err
			}
			val[i] = converted
		}
		return val, nil
	default:
		return val, nil
	}
}
