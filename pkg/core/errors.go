package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// ErrorKind classifies store failures.
type ErrorKind string

const (
	KindSerialization   ErrorKind = "serialization"
	KindDeserialization ErrorKind = "deserialization"
	KindIO              ErrorKind = "io"
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrSerialization   = errors.New("document cannot be serialized")
	ErrDeserialization = errors.New("document cannot be deserialized")
	ErrIO              = errors.New("state file i/o failed")
)

// Error is returned by every failing store operation.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	// Location is "file:line" of the call site that raised the error.
	Location string
	Err      error
}

// NewError builds an *Error, recording the caller's source location.
func NewError(kind ErrorKind, op, path string, err error) *Error {
	e := &Error{Kind: kind, Op: op, Path: path, Err: err}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.Location = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return e
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
	if e.Location != "" {
		msg = e.Location + " " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindSerialization:
		return target == ErrSerialization
	case KindDeserialization:
		return target == ErrDeserialization
	case KindIO:
		return target == ErrIO
	}
	return false
}

// KindOf returns the kind of err, or "" when err is not a store error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ErrReadOnly is returned by Save when the store was opened read-only.
var ErrReadOnly = errors.New("state store is in read-only mode")
