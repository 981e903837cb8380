package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/appstate/internal/commands"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer write_app_state/read_app_state requests over stdin/stdout",
	Long: `Serve the host UI over a JSON-lines pipe.

Each stdin line is a request such as
  {"id":1,"cmd":"read_app_state"}
  {"id":2,"cmd":"write_app_state","args":{"state":{...}}}
and each stdout line is the matching response
  {"id":1,"ok":true,"result":{...}}
  {"id":2,"ok":false,"error":"..."}`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := openService()
		if err != nil {
			fatal("Error opening state store", err)
		}

		registry := commands.NewRegistry(slog.Default())
		commands.RegisterStateCommands(registry, svc)

		slog.Debug("serving", "commands", registry.Names())
		if err := registry.Serve(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
			fatal("Serve failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
