package apply

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/script"
)

// UninstallAction is what Uninstall did, or would do, for one hook.
type UninstallAction string

const (
	Removed      UninstallAction = "removed"
	Restored     UninstallAction = "restored"
	WouldRemove  UninstallAction = "would-remove"
	WouldRestore UninstallAction = "would-restore"
)

// UninstallResult describes the outcome for one installed hookman script.
type UninstallResult struct {
	Type       hook.Type       `json:"hook" yaml:"hook"`
	Path       string          `json:"path" yaml:"path"`
	BackupPath string          `json:"backup_path,omitempty" yaml:"backup_path,omitempty"`
	Action     UninstallAction `json:"action" yaml:"action"`
}

// Uninstall removes every installed hookman script, restoring its backup
// when one exists. It needs a Git repository but not an initialized store.
func (o *Orchestrator) Uninstall(ctx context.Context, opts Options) ([]UninstallResult, error) {
	l := log.FromContext(ctx)

	hooksDir, err := o.HooksDir()
	if err != nil {
		return nil, err
	}

	var results []UninstallResult
	for _, t := range sortedTypes() {
		if !opts.includes(t) {
			continue
		}
		path := filepath.Join(hooksDir, t.String())
		content, err := readIfExists(path)
		if err != nil {
			return results, err
		}
		if content == nil || !script.IsManaged(content) {
			continue
		}

		res := UninstallResult{Type: t, Path: path}
		backup := BackupPath(path)
		_, statErr := os.Lstat(backup)
		hasBackup := statErr == nil
		if hasBackup {
			res.BackupPath = backup
		}

		switch {
		case opts.DryRun && hasBackup:
			res.Action = WouldRestore
		case opts.DryRun:
			res.Action = WouldRemove
		case hasBackup:
			if err := os.Rename(backup, path); err != nil {
				return results, fmt.Errorf("restore %s: %w", backup, err)
			}
			res.Action = Restored
		default:
			if err := os.Remove(path); err != nil {
				return results, fmt.Errorf("remove %s: %w", path, err)
			}
			res.Action = Removed
		}

		l.Debug("uninstall hook", "hook", t, "action", res.Action)
		results = append(results, res)
	}
	return results, nil
}
