//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates an empty git repo in a temp dir.
// Returns the absolute path to the repo (with symlinks resolved).
func setupTestRepo(t *testing.T) string {
	t.Helper()

	repoPath := resolvePath(t, t.TempDir())

	cmd := exec.Command("git", "init")
	cmd.Dir = repoPath
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to run git init: %v\n%s", err, out)
	}

	return repoPath
}

// setupInitializedRepo creates a git repo and runs 'hookman init' in it.
func setupInitializedRepo(t *testing.T) string {
	t.Helper()

	repoPath := setupTestRepo(t)
	ctx, _ := testContext(t, repoPath)
	if err := executeCommand(ctx, newInitCmd()); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return repoPath
}

// testContext returns a context rooted at workDir and the buffer that
// collects everything commands print to stdout.
func testContext(t *testing.T, workDir string) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	ctx := context.Background()
	ctx = config.WithWorkDir(ctx, workDir)
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &out)
	return ctx, &out
}

// executeCommand runs cmd with args under ctx.
func executeCommand(ctx context.Context, cmd *cobra.Command, args ...string) error {
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(ctx)
}

// addCommand runs 'hookman add' and fails the test on error.
func addCommand(t *testing.T, repoPath, hookType, id, command string) {
	t.Helper()

	ctx, _ := testContext(t, repoPath)
	if err := executeCommand(ctx, newAddCmd(), hookType, command, "--id", id); err != nil {
		t.Fatalf("add %s %s failed: %v", hookType, id, err)
	}
}

// hookPath returns the installed hook path inside repoPath.
func hookPath(repoPath, hookType string) string {
	return filepath.Join(repoPath, ".git", "hooks", hookType)
}

// readFile returns the file content, failing the test if it is unreadable.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
