package appstate_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/appstate"
)

// Example_basic demonstrates loading the default state, saving it and reading it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "appstate-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := appstate.New(filepath.Join(tmpDir, "appdata.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. First run: nothing on disk yet
	doc, err := svc.LoadState(ctx)
	if err != nil {
		log.Fatal(err)
	}
	state := doc.(map[string]any)
	fmt.Println("settingsOpen:", state["uiState"].(map[string]any)["settingsOpen"])

	// 2. Persist a change
	state["uiState"] = map[string]any{"settingsOpen": false}
	msg, err := svc.SaveState(ctx, state)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(msg)

	// 3. Read it back
	doc, err = svc.LoadState(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("settingsOpen:", doc.(map[string]any)["uiState"].(map[string]any)["settingsOpen"])
	// Output:
	// settingsOpen: true
	// file written
	// settingsOpen: false
}

// Example_echo shows the serialized text the store emits before writing.
func Example_echo() {
	tmpDir, err := os.MkdirTemp("", "appstate-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := appstate.New(filepath.Join(tmpDir, "appdata.yaml"), appstate.WithEcho(os.Stdout))
	if err != nil {
		log.Fatal(err)
	}

	if _, err := svc.SaveState(context.Background(), appstate.DefaultDocument()); err != nil {
		log.Fatal(err)
	}
	// Output:
	// configFileContents: {}
	// events: []
	// uiState:
	//   settingsOpen: true
}
