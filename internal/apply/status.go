package apply

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/script"
	"github.com/raphi011/hookman/internal/storage"
)

// HookStatus compares one hook's configuration with what is installed.
type HookStatus struct {
	Type      hook.Type    `json:"hook" yaml:"hook"`
	Commands  int          `json:"commands" yaml:"commands"`
	Path      string       `json:"path" yaml:"path"`
	State     script.State `json:"state" yaml:"state"`
	HasBackup bool         `json:"has_backup" yaml:"has_backup"`
}

// Status reports every hook type that is configured or has a script
// installed, in name order.
func (o *Orchestrator) Status(ctx context.Context) ([]HookStatus, error) {
	if !o.store.IsInitialized() {
		return nil, storage.ErrNotInitialized
	}
	hooksDir, err := o.HooksDir()
	if err != nil {
		return nil, err
	}

	configured, err := o.store.ListHooks()
	if err != nil {
		return nil, err
	}

	var statuses []HookStatus
	for _, t := range sortedTypes() {
		st, err := o.hookStatus(hooksDir, t, slices.Contains(configured, t))
		if err != nil {
			return nil, err
		}
		if st.State == script.Unconfigured {
			continue
		}
		statuses = append(statuses, st)
	}

	log.FromContext(ctx).Debug("status", "hooks_dir", hooksDir, "reported", len(statuses))
	return statuses, nil
}

func (o *Orchestrator) hookStatus(hooksDir string, t hook.Type, configured bool) (HookStatus, error) {
	st := HookStatus{Type: t, Path: filepath.Join(hooksDir, t.String())}

	var generated string
	if configured {
		h, err := o.store.LoadHook(t)
		if err != nil {
			return HookStatus{}, err
		}
		st.Commands = len(h.Commands)
		if !h.Empty() {
			if generated, err = script.Generate(h); err != nil {
				return HookStatus{}, err
			}
		}
	}

	installed, err := readIfExists(st.Path)
	if err != nil {
		return HookStatus{}, err
	}
	st.State = script.Classify(installed, generated)

	if _, err := os.Lstat(BackupPath(st.Path)); err == nil {
		st.HasBackup = true
	} else if !errors.Is(err, os.ErrNotExist) {
		return HookStatus{}, fmt.Errorf("stat %s: %w", BackupPath(st.Path), err)
	}
	return st, nil
}

// sortedTypes returns all hook types ordered by name, matching ListHooks.
func sortedTypes() []hook.Type {
	types := hook.Types()
	slices.SortFunc(types, func(a, b hook.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return types
}
