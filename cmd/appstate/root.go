package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/appstate"
	"github.com/aretw0/appstate/pkg/core"
)

// envPath overrides the default state file when --path is not given.
const envPath = "APPSTATE_PATH"

var (
	verbose   bool
	statePath string
	echo      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "appstate",
	Short: "Persist and restore the application state document",
	Long: `appstate keeps a desktop shell's state in a single human-readable YAML file.
When the file does not exist, reads return the default state.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&statePath, "path", "p", "", "State file (default $"+envPath+" or "+appstate.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVar(&echo, "echo", false, "Print the serialized document to stderr before saving")
}

// resolveStatePath applies flag > environment > default precedence.
func resolveStatePath() string {
	if statePath != "" {
		return statePath
	}
	return os.Getenv(envPath)
}

// openService builds the service for the configured state file.
func openService(opts ...appstate.Option) (*core.Service, error) {
	base := []appstate.Option{appstate.WithLogger(slog.Default())}
	if echo {
		base = append(base, appstate.WithEcho(os.Stderr))
	}
	return appstate.New(resolveStatePath(), append(base, opts...)...)
}
