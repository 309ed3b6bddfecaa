package apply

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/raphi011/hookman/internal/git"
	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/script"
	"github.com/raphi011/hookman/internal/storage"
)

// ScriptMode is the permission set on installed hooks. Git runs them directly.
const ScriptMode fs.FileMode = 0o755

// BackupSuffix is appended to a hook path to form its backup path.
const BackupSuffix = ".backup"

// Action is what Apply did, or would do, for one hook.
type Action string

const (
	Installed    Action = "installed"
	Unchanged    Action = "unchanged"
	WouldInstall Action = "would-install"
)

// Options controls Apply and Uninstall.
type Options struct {
	DryRun bool
	// Only restricts the run to these hook types. Empty means all.
	Only []hook.Type
}

func (o Options) includes(t hook.Type) bool {
	return len(o.Only) == 0 || slices.Contains(o.Only, t)
}

// Result describes the outcome for one hook type.
type Result struct {
	Type       hook.Type `json:"hook" yaml:"hook"`
	Path       string    `json:"path" yaml:"path"`
	BackupPath string    `json:"backup_path,omitempty" yaml:"backup_path,omitempty"` // set when a backup was (or would be) written
	Script     string    `json:"-" yaml:"-"`
	Action     Action    `json:"action" yaml:"action"`
}

// Orchestrator applies stored hooks to the repository at a working directory.
type Orchestrator struct {
	store   storage.Storage
	workDir string
}

// New returns an Orchestrator for the repository rooted at workDir.
func New(store storage.Storage, workDir string) *Orchestrator {
	return &Orchestrator{store: store, workDir: workDir}
}

// BackupPath returns the backup location for an installed hook path.
func BackupPath(hookPath string) string {
	return hookPath + BackupSuffix
}

// HooksDir resolves the Git hooks directory of the working directory.
func (o *Orchestrator) HooksDir() (string, error) {
	return git.FindHooksDir(o.workDir)
}

// Apply installs every configured non-empty hook. It returns the results of
// all hooks processed so far, including when it stops on an error.
// A store without configured hooks yields no results and no error.
func (o *Orchestrator) Apply(ctx context.Context, opts Options) ([]Result, error) {
	l := log.FromContext(ctx)

	if !o.store.IsInitialized() {
		return nil, storage.ErrNotInitialized
	}
	hooksDir, err := o.HooksDir()
	if err != nil {
		return nil, err
	}

	types, err := o.store.ListHooks()
	if err != nil {
		return nil, err
	}
	l.Debug("apply", "hooks_dir", hooksDir, "configured", len(types), "dry_run", opts.DryRun)

	var results []Result
	for _, t := range types {
		if !opts.includes(t) {
			continue
		}
		h, err := o.store.LoadHook(t)
		if err != nil {
			return results, err
		}
		if h.Empty() {
			l.Debug("skip empty hook", "hook", t)
			continue
		}

		res, err := o.applyHook(ctx, hooksDir, h, opts)
		if err != nil {
			return results, fmt.Errorf("apply %s: %w", t, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (o *Orchestrator) applyHook(ctx context.Context, hooksDir string, h *hook.Hook, opts Options) (Result, error) {
	l := log.FromContext(ctx)

	content, err := script.Generate(h)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Type:   h.Type,
		Path:   filepath.Join(hooksDir, h.Type.String()),
		Script: content,
	}

	existing, err := readIfExists(res.Path)
	if err != nil {
		return Result{}, err
	}

	if existing != nil && bytes.Equal(existing, []byte(content)) {
		res.Action = Unchanged
		if opts.DryRun {
			return res, nil
		}
		if err := os.Chmod(res.Path, ScriptMode); err != nil {
			return Result{}, fmt.Errorf("chmod %s: %w", res.Path, err)
		}
		l.Debug("hook unchanged", "hook", h.Type, "path", res.Path)
		return res, nil
	}

	backup := BackupPath(res.Path)
	if existing != nil && !keepBackup(existing, backup) {
		res.BackupPath = backup
	}

	if opts.DryRun {
		res.Action = WouldInstall
		return res, nil
	}

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create hooks directory %s: %w", hooksDir, err)
	}
	if res.BackupPath != "" {
		if err := copyFile(res.Path, res.BackupPath); err != nil {
			return Result{}, fmt.Errorf("back up %s: %w", res.Path, err)
		}
		l.Debug("backed up hook", "hook", h.Type, "backup", res.BackupPath)
	}
	if err := storage.WriteFileAtomic(res.Path, []byte(content), ScriptMode); err != nil {
		return Result{}, fmt.Errorf("install %s: %w", res.Path, err)
	}
	// Rename keeps the temp file's mode; set it again in case the target
	// filesystem ignored the chmod on the temp file.
	if err := os.Chmod(res.Path, ScriptMode); err != nil {
		return Result{}, fmt.Errorf("chmod %s: %w", res.Path, err)
	}

	res.Action = Installed
	l.Debug("installed hook", "hook", h.Type, "path", res.Path, "commands", len(h.Commands))
	return res, nil
}

// keepBackup reports whether an existing backup must be preserved instead of
// overwritten: the installed script is ours, so the backup holds the hook
// that was there before hookman.
func keepBackup(existing []byte, backup string) bool {
	if !script.IsManaged(existing) {
		return false
	}
	_, err := os.Lstat(backup)
	return err == nil
}

// readIfExists returns the file content, or nil if path does not exist.
func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// copyFile copies src to dst byte for byte, keeping src's permissions.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return storage.WriteFileAtomic(dst, data, info.Mode().Perm())
}
