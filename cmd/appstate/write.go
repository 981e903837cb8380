package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/appstate/pkg/adapters/fs"
)

var (
	writeFile string
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Replace the application state",
	Long: `Replace the stored application state with a document read from --file or stdin.
The input may be YAML or JSON. The previous state is overwritten, not merged.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var in io.Reader = os.Stdin
		if writeFile != "" {
			f, err := os.Open(writeFile)
			if err != nil {
				fatal("Failed to open input", err)
			}
			defer f.Close()
			in = f
		}

		data, err := io.ReadAll(in)
		if err != nil {
			fatal("Failed to read input", err)
		}

		// JSON is a subset of YAML, so one parser covers both.
		doc, err := fs.NewYAMLSerializer().Parse(data)
		if err != nil {
			fatal("Failed to parse input", err)
		}

		svc, err := openService()
		if err != nil {
			fatal("Failed to open state store", err)
		}

		msg, err := svc.SaveState(context.Background(), doc)
		if err != nil {
			fatal("Failed to save state", err)
		}

		fmt.Println(msg)
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVarP(&writeFile, "file", "f", "", "Read the document from this file instead of stdin")
}
