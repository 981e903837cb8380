package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/appstate/pkg/core"
)

// Serializer defines how the state document is encoded on disk.
type Serializer interface {
	// Serialize converts the document to bytes.
	Serialize(doc core.Document) ([]byte, error)
	// Parse decodes bytes read from disk.
	Parse(data []byte) (core.Document, error)
	// Name identifies the format, e.g. for introspection.
	Name() string
}

// YAMLSerializer handles reading and writing YAML state files.
type YAMLSerializer struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

// NewYAMLSerializer creates a YAML serializer with 2-space indentation.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{Indent: 2}
}

func (s *YAMLSerializer) Name() string { return "yaml" }

func (s *YAMLSerializer) Serialize(doc core.Document) (out []byte, err error) {
	// yaml.v3 recurses without bound on cyclic values and panics on
	// funcs and channels, so reject those first.
	if err := checkEncodable(reflect.ValueOf(doc), make(map[visit]struct{})); err != nil {
		return nil, err
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			out, err = nil, fmt.Errorf("yaml encoder: %v", recovered)
		}
	}()

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(s.Indent)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse decodes exactly one YAML document. Empty input yields a nil document;
// a stream holding more than one document is rejected.
func (s *YAMLSerializer) Parse(data []byte) (core.Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	var extra any
	switch err := decoder.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return doc, nil
	case err != nil:
		return nil, fmt.Errorf("invalid yaml: %w", err)
	default:
		return nil, fmt.Errorf("invalid yaml: expected a single document, found more")
	}
}

// visit identifies a reference-typed value on the current traversal path.
type visit struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// checkEncodable walks v and fails if a map, slice or pointer contains itself,
// or if it holds a value YAML has no representation for.
// Shared but acyclic references are allowed: only the current path is tracked.
func checkEncodable(v reflect.Value, path map[visit]struct{}) error {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return checkEncodable(v.Elem(), path)

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return enter(v, 0, path, func() error {
			return checkEncodable(v.Elem(), path)
		})

	case reflect.Map:
		if v.IsNil() || v.Len() == 0 {
			return nil
		}
		return enter(v, 0, path, func() error {
			iter := v.MapRange()
			for iter.Next() {
				if err := checkEncodable(iter.Key(), path); err != nil {
					return err
				}
				if err := checkEncodable(iter.Value(), path); err != nil {
					return err
				}
			}
			return nil
		})

	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		return enter(v, v.Len(), path, func() error {
			for i := 0; i < v.Len(); i++ {
				if err := checkEncodable(v.Index(i), path); err != nil {
					return err
				}
			}
			return nil
		})

	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := checkEncodable(v.Index(i), path); err != nil {
				return err
			}
		}

	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return fmt.Errorf("values of type %s cannot be encoded", v.Type())

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("yaml") == "-" {
				continue
			}
			if err := checkEncodable(v.Field(i), path); err != nil {
				return err
			}
		}
	}
	return nil
}

func enter(v reflect.Value, n int, path map[visit]struct{}, fn func() error) error {
	key := visit{ptr: v.Pointer(), len: n, typ: v.Type()}
	if _, ok := path[key]; ok {
		return fmt.Errorf("cyclic value of type %s cannot be encoded", v.Type())
	}
	path[key] = struct{}{}
	defer delete(path, key)
	return fn()
}
