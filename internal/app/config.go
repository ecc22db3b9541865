// internal/app/config.go
package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SchemaPath string // the .conf schema document to compile

	OutputDir   string // directory generated code is written into
	PackageName string // package clause for generated code
	RootName    string // Go type name of the root struct
	AllRequired bool   // force every field required, ignoring hints
	DumpModel   bool   // print the IR as JSON instead of generating

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SchemaPath == "" {
		return nil, errors.New("SchemaPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.PackageName == "" {
		cfg.PackageName = "config"
	}
	if cfg.RootName == "" {
		cfg.RootName = "Config"
	}
	return &cfg, nil
}
