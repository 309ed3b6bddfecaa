package apply

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raphi011/hookman/internal/git"
	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/script"
	"github.com/raphi011/hookman/internal/storage"
)

type testRepo struct {
	dir      string
	hooksDir string
	store    *storage.TOMLStore
	orch     *Orchestrator
}

// newTestRepo creates a working directory with a .git directory and an
// initialized store.
func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	store := storage.NewTOMLStore(dir, "test")
	require.NoError(t, store.Init())

	return &testRepo{
		dir:      dir,
		hooksDir: git.HooksDir(filepath.Join(dir, ".git")),
		store:    store,
		orch:     New(store, dir),
	}
}

func (r *testRepo) addCommand(t *testing.T, ht hook.Type, id, command string) {
	t.Helper()
	h, err := r.store.LoadHook(ht)
	require.NoError(t, err)
	require.NoError(t, h.Add(hook.Command{ID: id, Command: command}))
	require.NoError(t, r.store.SaveHook(h))
}

func (r *testRepo) writeHook(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(r.hooksDir, name)
	require.NoError(t, os.MkdirAll(r.hooksDir, 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type fileState struct {
	mode    fs.FileMode
	content string
}

// snapshot records every file and directory below root.
func snapshot(t *testing.T, root string) map[string]fileState {
	t.Helper()
	files := map[string]fileState{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		st := fileState{mode: info.Mode()}
		if !d.IsDir() {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			st.content = string(data)
		}
		files[path] = st
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestApply_InstallsScript(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.PreCommit, "format", "cargo fmt -- --check")
	r.addCommand(t, hook.PreCommit, "test", "cargo test")

	results, err := r.orch.Apply(context.Background(), Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	require.Equal(t, hook.PreCommit, res.Type)
	require.Equal(t, Installed, res.Action)
	require.Empty(t, res.BackupPath)
	require.Equal(t, filepath.Join(r.hooksDir, "pre-commit"), res.Path)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	require.Equal(t, res.Script, string(data))
	require.True(t, script.IsManaged(data))

	info, err := os.Stat(res.Path)
	require.NoError(t, err)
	require.Equal(t, ScriptMode, info.Mode().Perm())

	require.NoFileExists(t, BackupPath(res.Path))
}

func TestApply_CreatesHooksDir(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.PrePush, "a", "true")
	require.NoDirExists(t, r.hooksDir)

	_, err := r.orch.Apply(context.Background(), Options{})
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(r.hooksDir, "pre-push"))
}

func TestApply_BacksUpForeignHook(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.PreCommit, "lint", "make lint")
	foreign := "#!/bin/sh\n# hand written\nmake check\n"
	path := r.writeHook(t, "pre-commit", foreign)

	results, err := r.orch.Apply(context.Background(), Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, BackupPath(path), results[0].BackupPath)

	backup, err := os.ReadFile(BackupPath(path))
	require.NoError(t, err)
	require.Equal(t, foreign, string(backup))

	installed, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(installed), "make lint")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Mode().Perm()&0o111, "installed hook must be executable")

	// Exactly one backup file.
	entries, err := os.ReadDir(r.hooksDir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), BackupSuffix) {
			backups++
		}
	}
	require.Equal(t, 1, backups)
}

func TestApply_ReapplyKeepsForeignBackup(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.PreCommit, "a", "echo a")
	foreign := "#!/bin/sh\necho original\n"
	path := r.writeHook(t, "pre-commit", foreign)

	ctx := context.Background()
	_, err := r.orch.Apply(ctx, Options{})
	require.NoError(t, err)

	// Change config so the managed script differs.
	r.addCommand(t, hook.PreCommit, "b", "echo b")
	results, err := r.orch.Apply(ctx, Options{})
	require.NoError(t, err)
	require.Equal(t, Installed, results[0].Action)
	require.Empty(t, results[0].BackupPath)

	backup, err := os.ReadFile(BackupPath(path))
	require.NoError(t, err)
	require.Equal(t, foreign, string(backup))
}

func TestApply_BacksUpManagedScriptWithoutBackup(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.PreCommit, "a", "echo a")
	stale := script.Marker + "\necho stale\n"
	path := r.writeHook(t, "pre-commit", stale)

	results, err := r.orch.Apply(context.Background(), Options{})
	require.NoError(t, err)
	require.Equal(t, BackupPath(path), results[0].BackupPath)

	backup, err := os.ReadFile(BackupPath(path))
	require.NoError(t, err)
	require.Equal(t, stale, string(backup))
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.PreCommit, "a", "true")
	ctx := context.Background()

	_, err := r.orch.Apply(ctx, Options{})
	require.NoError(t, err)

	path := filepath.Join(r.hooksDir, "pre-commit")
	require.NoError(t, os.Chmod(path, 0o644))

	results, err := r.orch.Apply(ctx, Options{})
	require.NoError(t, err)
	require.Equal(t, Unchanged, results[0].Action)
	require.Empty(t, results[0].BackupPath)
	require.NoFileExists(t, BackupPath(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, ScriptMode, info.Mode().Perm(), "mode is enforced on unchanged hooks")
}

func TestApply_DryRunMakesNoChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(t *testing.T, r *testRepo)
		want  Action
	}{
		{"no hooks dir", func(*testing.T, *testRepo) {}, WouldInstall},
		{"foreign hook", func(t *testing.T, r *testRepo) {
			r.writeHook(t, "pre-commit", "#!/bin/sh\necho foreign\n")
		}, WouldInstall},
		{"already applied", func(t *testing.T, r *testRepo) {
			_, err := r.orch.Apply(context.Background(), Options{})
			require.NoError(t, err)
			require.NoError(t, os.Chmod(filepath.Join(r.hooksDir, "pre-commit"), 0o600))
		}, Unchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRepo(t)
			r.addCommand(t, hook.PreCommit, "a", "echo a")
			r.addCommand(t, hook.PrePush, "b", "echo b")
			tt.setup(t, r)

			before := snapshot(t, r.dir)
			results, err := r.orch.Apply(context.Background(), Options{DryRun: true})
			require.NoError(t, err)
			require.Equal(t, before, snapshot(t, r.dir))

			require.Len(t, results, 2)
			require.Equal(t, tt.want, results[0].Action)
			require.NotEmpty(t, results[0].Script)
		})
	}
}

func TestApply_DryRunReportsBackup(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.PreCommit, "a", "true")
	path := r.writeHook(t, "pre-commit", "#!/bin/sh\n")

	results, err := r.orch.Apply(context.Background(), Options{DryRun: true})
	require.NoError(t, err)
	require.Equal(t, BackupPath(path), results[0].BackupPath)
	require.NoFileExists(t, BackupPath(path))
}

func TestApply_SkipsEmptyHooks(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	require.NoError(t, r.store.SaveHook(hook.New(hook.CommitMsg)))
	r.addCommand(t, hook.PrePush, "a", "true")

	results, err := r.orch.Apply(context.Background(), Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, hook.PrePush, results[0].Type)
	require.NoFileExists(t, filepath.Join(r.hooksDir, "commit-msg"))
}

func TestApply_SortedByName(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.PrePush, "a", "true")
	r.addCommand(t, hook.CommitMsg, "a", "true")
	r.addCommand(t, hook.PreCommit, "a", "true")

	results, err := r.orch.Apply(context.Background(), Options{DryRun: true})
	require.NoError(t, err)

	var got []hook.Type
	for _, res := range results {
		got = append(got, res.Type)
	}
	require.Equal(t, []hook.Type{hook.CommitMsg, hook.PreCommit, hook.PrePush}, got)
}

func TestApply_NothingConfigured(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)

	results, err := r.orch.Apply(context.Background(), Options{})
	require.NoError(t, err)
	require.Empty(t, results)
	require.NoDirExists(t, r.hooksDir)
}

func TestApply_NotInitialized(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	_, err := New(storage.NewTOMLStore(dir, "test"), dir).Apply(context.Background(), Options{})
	require.ErrorIs(t, err, storage.ErrNotInitialized)
}

func TestApply_NotGitRepo(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := storage.NewTOMLStore(dir, "test")
	require.NoError(t, store.Init())

	_, err := New(store, dir).Apply(context.Background(), Options{})
	require.ErrorIs(t, err, git.ErrNotGitRepo)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.CommitMsg, "a", "true")
	r.addCommand(t, hook.PreCommit, "a", "true")
	r.addCommand(t, hook.PrePush, "a", "true")

	// A directory in the pre-commit slot can't be read or replaced.
	require.NoError(t, os.MkdirAll(filepath.Join(r.hooksDir, "pre-commit"), 0o755))

	results, err := r.orch.Apply(context.Background(), Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "pre-commit")

	require.Len(t, results, 1)
	require.Equal(t, hook.CommitMsg, results[0].Type)
	require.FileExists(t, filepath.Join(r.hooksDir, "commit-msg"))
	require.NoFileExists(t, filepath.Join(r.hooksDir, "pre-push"))
}

func TestApply_MalformedHookFile(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	path := r.store.Paths().HookFile(hook.PreCommit)
	require.NoError(t, os.WriteFile(path, []byte("[[commands]\n"), 0o644))

	_, err := r.orch.Apply(context.Background(), Options{})
	require.ErrorIs(t, err, storage.ErrMalformed)
}

func TestApply_Only(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	r.addCommand(t, hook.PreCommit, "a", "true")
	r.addCommand(t, hook.PrePush, "a", "true")

	results, err := r.orch.Apply(context.Background(), Options{Only: []hook.Type{hook.PrePush}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, hook.PrePush, results[0].Type)
	require.NoFileExists(t, filepath.Join(r.hooksDir, "pre-commit"))
}
