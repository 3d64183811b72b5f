package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/modhost/internal/app"
	"github.com/vk/modhost/internal/cli"
	"github.com/vk/modhost/internal/config"
	"github.com/vk/modhost/internal/hcl_adapter"
	"github.com/vk/modhost/internal/viper_adapter"
)

// main is the entrypoint for the modhost application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here and
	// surface the panic as a regular error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	hostApp := app.NewApp(outW, appConfig, loaderFor(appConfig.ConfigPath))

	return hostApp.Run(context.Background())
}

// loaderFor picks a concrete configuration loader from the document's file
// extension. HCL documents get the native loader; everything else goes
// through viper, which sniffs YAML, TOML, and JSON itself.
func loaderFor(path string) config.Loader {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return hcl_adapter.NewLoader()
	}
	return viper_adapter.NewLoader()
}
