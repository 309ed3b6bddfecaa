package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/raphi011/hookman/internal/apply"
	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/storage"
)

// openStore returns the store rooted at the working directory in ctx.
func openStore(ctx context.Context) *storage.TOMLStore {
	return storage.NewTOMLStore(config.WorkDirFromContext(ctx), version)
}

// requireStore returns the store, failing with storage.ErrNotInitialized
// if 'hookman init' has not been run.
func requireStore(ctx context.Context) (*storage.TOMLStore, error) {
	store := openStore(ctx)
	if !store.IsInitialized() {
		return nil, storage.ErrNotInitialized
	}
	return store, nil
}

func newOrchestrator(ctx context.Context, store storage.Storage) *apply.Orchestrator {
	return apply.New(store, config.WorkDirFromContext(ctx))
}

// isInteractive reports whether stdin is a terminal, so prompts can be shown.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// parseHookTypes parses every argument as a hook type.
func parseHookTypes(args []string) ([]hook.Type, error) {
	types := make([]hook.Type, 0, len(args))
	for _, a := range args {
		t, err := hook.ParseType(a)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// writeStructured encodes v as json or yaml.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
