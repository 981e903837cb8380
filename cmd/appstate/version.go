package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/appstate"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of appstate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("appstate version %s\n", appstate.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
