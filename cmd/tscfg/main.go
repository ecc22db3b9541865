package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sebastian-peter/tscfg/internal/app"
	"github.com/sebastian-peter/tscfg/internal/cli"
	"github.com/sebastian-peter/tscfg/internal/hocon"
)

// main is the entrypoint for the tscfg compiler.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HOCON frontend to pass to the app.
	parser := hocon.NewParser()
	compiler := app.NewApp(outW, errW, appConfig, parser)

	return compiler.Run(context.Background())
}
