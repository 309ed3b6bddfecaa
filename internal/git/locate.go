package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotGitRepo indicates the working directory has no .git entry.
var ErrNotGitRepo = errors.New("not in a Git repository")

// FindGitDir returns the Git directory of the repository rooted at workDir.
func FindGitDir(workDir string) (string, error) {
	gitPath := filepath.Join(workDir, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotGitRepo, workDir)
		}
		return "", fmt.Errorf("stat %s: %w", gitPath, err)
	}

	if info.IsDir() {
		return gitPath, nil
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is neither a directory nor a gitdir file", ErrNotGitRepo, gitPath)
	}
	return readGitFile(gitPath)
}

// readGitFile resolves a "gitdir: <path>" pointer file.
func readGitFile(gitPath string) (string, error) {
	data, err := os.ReadFile(gitPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", gitPath, err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	target, ok := strings.CutPrefix(strings.TrimSpace(line), "gitdir:")
	target = strings.TrimSpace(target)
	if !ok || target == "" {
		return "", fmt.Errorf("%w: %s has no gitdir line", ErrNotGitRepo, gitPath)
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(gitPath), target)
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: gitdir %s does not exist", ErrNotGitRepo, target)
	}
	return filepath.Clean(target), nil
}

// HooksDir returns the hooks directory inside gitDir.
func HooksDir(gitDir string) string {
	return filepath.Join(gitDir, "hooks")
}

// FindHooksDir is FindGitDir followed by HooksDir.
func FindHooksDir(workDir string) (string, error) {
	gitDir, err := FindGitDir(workDir)
	if err != nil {
		return "", err
	}
	return HooksDir(gitDir), nil
}
