// internal/app/app.go
package app

import (
	"io"
	"log/slog"

	"github.com/sebastian-peter/tscfg/internal/hocon"
)

// App encapsulates the compiler's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer // program output: the --dump-model JSON
	logger *slog.Logger
	config *Config
	parser *hocon.Parser
}

// NewApp is the constructor for the main application. Logs go to errW
// so program output on outW stays machine-readable.
func NewApp(outW, errW io.Writer, config *Config, parser *hocon.Parser) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		parser: parser,
	}
}
