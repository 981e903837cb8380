package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/appstate"
)

var watchJSON bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the application state whenever the file changes",
	Long:  `Watch the state file and print the reloaded document after every external change. Stops on SIGINT/SIGTERM.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := openService(appstate.WithReadOnly(true))
		if err != nil {
			fatal("Error opening state store", err)
		}

		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		for e := range events {
			slog.Info("state file changed", "event", e.Type, "path", e.Path)

			doc, err := svc.LoadState(ctx)
			if err != nil {
				// Editors may leave the file half written; the next event will retry.
				slog.Warn("reload failed", "error", err)
				continue
			}
			if err := printDocument(doc, watchJSON); err != nil {
				slog.Error("print failed", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "Output in JSON format")
}
