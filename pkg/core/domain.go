// Package core holds the domain of the application-state store: the document,
// its default shape, the error taxonomy and the service the host layer calls.
package core

import "fmt"

// Document is the single persisted application-state value.
// It is a tree of scalars, []any sequences and map[string]any mappings whose
// shape is owned by the caller; the store never inspects it.
type Document = any

// Confirmation is returned by a successful save.
const Confirmation = "file written"

// DefaultDocument returns the document used when nothing has been persisted yet.
// Each call returns a fresh value.
func DefaultDocument() Document {
	return map[string]any{
		"events":             []any{},
		"configFileContents": map[string]any{},
		"uiState": map[string]any{
			"settingsOpen": true,
		},
	}
}

// Normalize converts mappings with non-string keys into map[string]any,
// recursively, so the document can be encoded as JSON.
func Normalize(doc Document) Document {
	switch v := doc.(type) {
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = Normalize(val)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = Normalize(val)
		}
		return m
	case []any:
		l := make([]any, len(v))
		for i, val := range v {
			l[i] = Normalize(val)
		}
		return l
	default:
		return v
	}
}

// EventType represents the type of change observed on the state file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the state file made outside this process.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
