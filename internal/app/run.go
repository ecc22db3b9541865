// internal/app/run.go
package app

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/sebastian-peter/tscfg/internal/builder"
	"github.com/sebastian-peter/tscfg/internal/ctxlog"
	"github.com/sebastian-peter/tscfg/internal/generator"
)

// Run executes the full pipeline: parse, build, then generate or dump.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	cfg, diags := a.parser.ParseFile(ctx, a.config.SchemaPath)
	if diags.HasErrors() {
		return fmt.Errorf("parsing %s: %w", a.config.SchemaPath, diags)
	}
	a.logger.Debug("Schema parsed.", "path", a.config.SchemaPath)

	b := builder.New(builder.Options{AssumeAllRequired: a.config.AllRequired})
	result, err := b.Build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("building model from %s: %w", a.config.SchemaPath, err)
	}
	for _, w := range result.Warnings {
		a.logger.Warn(w.Message(), "line", w.Line, "source", w.Source)
	}

	if a.config.DumpModel {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding model: %w", err)
		}
		fmt.Fprintln(a.outW, string(out))
		return nil
	}

	return generator.Generate(ctx, generator.Options{
		OutputDir:   a.config.OutputDir,
		PackageName: a.config.PackageName,
		RootName:    a.config.RootName,
	}, result)
}
