package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/appstate"
	"github.com/aretw0/appstate/pkg/adapters/fs"
	"github.com/aretw0/appstate/pkg/core"
)

var (
	readJSON bool
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Print the application state",
	Long:  `Print the stored application state as YAML, or as JSON with --json. Prints the default state when no file exists.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openService(appstate.WithReadOnly(true))
		if err != nil {
			fatal("Error opening state store", err)
		}

		doc, err := svc.LoadState(context.Background())
		if err != nil {
			fatal("Error reading state", err)
		}

		if err := printDocument(doc, readJSON); err != nil {
			fatal("Error printing state", err)
		}
	},
}

// printDocument writes doc to stdout as JSON or YAML.
func printDocument(doc core.Document, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(core.Normalize(doc))
	}

	data, err := fs.NewYAMLSerializer().Serialize(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, string(data))
	return err
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
}
