package config

import (
	"context"
	"errors"
	"os"
)

// Config is the persisted repository-wide record.
type Config struct {
	Version string `toml:"version" json:"version" yaml:"version"`
}

// Default returns the record written by a fresh init.
func Default(version string) Config {
	return Config{Version: version}
}

// Validate checks that the record is usable.
func (c Config) Validate() error {
	if c.Version == "" {
		return errors.New("version is required")
	}
	return nil
}

type workDirKey struct{}

// WithWorkDir attaches the working directory to the context.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the working directory stored in ctx.
// Falls back to the process working directory if none is stored.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
