package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/hookman/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// HooksPathOverride returns the core.hooksPath configured for the repository
// at dir, or "" if it is unset. When set, Git runs hooks from that path
// instead of .git/hooks.
func HooksPathOverride(ctx context.Context, dir string) (string, error) {
	if err := CheckGit(); err != nil {
		return "", err
	}
	out, err := outputGit(ctx, dir, "config", "--get", "core.hooksPath")
	if err != nil {
		// git config exits 1 when the key is unset.
		var cmdErr *cmd.Error
		if errors.As(err, &cmdErr) && cmdErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("read core.hooksPath: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
