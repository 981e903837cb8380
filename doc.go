// Package appstate is the Composition Root for the application-state store.
//
// It connects the core domain (the opaque state document, its default and the
// error taxonomy) with the filesystem adapter that keeps it in a single YAML file.
//
// The store has two operations. Save replaces the file with the YAML encoding of
// the document. Load reads it back and, when the file does not exist, returns the
// default document:
//
//	events: []
//	configFileContents: {}
//	uiState:
//	  settingsOpen: true
//
// A malformed file is an error, never a reason to fall back to the default.
// Writes are not atomic.
//
// Usage:
//
//	svc, err := appstate.New("../appdata.yaml", appstate.WithLogger(logger))
//
//	doc, err := svc.LoadState(ctx)
//	msg, err := svc.SaveState(ctx, doc)
package appstate
