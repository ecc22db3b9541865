// internal/generator/generator.go
package generator

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/sebastian-peter/tscfg/internal/ctxlog"
	"github.com/sebastian-peter/tscfg/internal/model"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Options configures one generation run.
type Options struct {
	OutputDir   string // directory the generated file is written into
	PackageName string // package clause of the generated file
	RootName    string // Go type name of the root struct
}

// Generate renders the typed accessor layer for a build result and
// writes it to <OutputDir>/tscfg_config.go.
func Generate(ctx context.Context, opts Options, result *model.BuildResult) error {
	logger := ctxlog.FromContext(ctx)

	src, renderErr := Render(ctx, opts, result)
	if renderErr != nil && src == nil {
		return renderErr
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	outFile := filepath.Join(opts.OutputDir, "tscfg_config.go")
	if renderErr != nil {
		// Write the unformatted output anyway so the defect is inspectable.
		_ = os.WriteFile(outFile, src, 0o644)
		return renderErr
	}
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}
	logger.Info("Generated accessor code.", "file", outFile, "bytes", len(src))
	return nil
}

// Render produces the formatted source without touching the
// filesystem. When gofmt rejects the output the raw bytes come back
// with the error so the problem is inspectable.
func Render(ctx context.Context, opts Options, result *model.BuildResult) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	rootName := opts.RootName
	if rootName == "" {
		rootName = "Config"
	}
	pkg := opts.PackageName
	if pkg == "" {
		pkg = "config"
	}

	data, err := buildFileData(pkg, rootName, result)
	if err != nil {
		return nil, fmt.Errorf("mapping model to Go declarations: %w", err)
	}
	logger.Debug("Mapped model for generation.",
		"structs", len(data.Structs), "enums", len(data.Enums))

	tmplB, err := templatesFS.ReadFile("templates/config.go.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	tmpl, err := template.New("config").Parse(string(tmplB))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := tmpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}
