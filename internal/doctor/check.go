package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/hookman/internal/git"
	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/script"
	"github.com/raphi011/hookman/internal/storage"
)

// checkStore inspects the config and hook files.
func (d *Doctor) checkStore(stats *IssueStats) ([]Issue, error) {
	var issues []Issue
	paths := d.store.Paths()

	if _, err := d.store.LoadConfig(); err != nil {
		if !errors.Is(err, storage.ErrMalformed) {
			return nil, err
		}
		issues = append(issues, Issue{
			Key:         storage.ConfigFileName,
			Description: err.Error(),
			FixAction:   FixResetConfig,
			Path:        paths.Config,
		})
	}

	issues = append(issues, tempFileIssues(paths.Root)...)

	entries, err := os.ReadDir(paths.Hooks)
	if errors.Is(err, os.ErrNotExist) {
		issues = append(issues, Issue{
			Key:         storage.HooksDirName,
			Description: "hooks directory is missing",
			FixAction:   FixCreateHooksDir,
			Path:        paths.Hooks,
		})
		return issues, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read hooks directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(paths.Hooks, name)

		if isHookTempFile(name, storage.HookFileExt) {
			issues = append(issues, tempIssue(path))
			continue
		}
		stem, ok := strings.CutSuffix(name, storage.HookFileExt)
		if !ok || entry.IsDir() {
			continue
		}

		t, err := hook.ParseType(stem)
		if err != nil {
			issues = append(issues, Issue{
				Key:         name,
				Description: err.Error() + ", file is ignored",
				Path:        path,
			})
			continue
		}

		h, err := d.store.LoadHook(t)
		if err != nil {
			issues = append(issues, Issue{
				Key:         name,
				Description: err.Error(),
				Path:        path,
				Hook:        t,
			})
			continue
		}
		if h.Empty() {
			issues = append(issues, Issue{
				Key:         name,
				Description: "hook has no commands",
				FixAction:   FixDeleteHookFile,
				Path:        path,
				Hook:        t,
			})
			continue
		}
		stats.HooksConfigured++
	}

	return issues, nil
}

// checkInstalled compares installed scripts with the configuration.
func (d *Doctor) checkInstalled(ctx context.Context, hooksDir string, stats *IssueStats) []Issue {
	issues := tempFileIssues(hooksDir)

	statuses, err := d.orch.Status(ctx)
	if err != nil {
		return append(issues, Issue{
			Key:         "status",
			Description: fmt.Sprintf("can't compare installed hooks: %v", err),
		})
	}

	for _, st := range statuses {
		issue := Issue{Key: st.Type.String(), Path: st.Path, Hook: st.Type}
		switch st.State {
		case script.UpToDate:
			info, err := os.Stat(st.Path)
			if err == nil && info.Mode().Perm()&0o111 == 0 {
				issue.Description = "installed script is not executable"
				issue.FixAction = FixApply
				break
			}
			stats.HooksHealthy++
			continue
		case script.NotInstalled:
			issue.Description = "configured but not installed"
			issue.FixAction = FixApply
		case script.Outdated:
			issue.Description = "installed script is outdated"
			issue.FixAction = FixApply
		case script.Foreign:
			if st.Commands == 0 {
				continue
			}
			issue.Description = "a script not managed by hookman is installed; apply backs it up"
			issue.FixAction = FixApply
		case script.Orphaned:
			issue.Description = "hookman script installed but no commands are configured"
			issue.FixAction = FixUninstall
		default:
			continue
		}
		issues = append(issues, issue)
	}
	return issues
}

// checkGit reports git settings that bypass the installed hooks.
func (d *Doctor) checkGit(ctx context.Context) []Issue {
	hooksPath, err := git.HooksPathOverride(ctx, d.workDir)
	if err != nil {
		log.FromContext(ctx).Debug("skip git config check", "error", err)
		return nil
	}
	if hooksPath == "" {
		return nil
	}
	return []Issue{{
		Key:         "core.hooksPath",
		Description: fmt.Sprintf("set to %q, Git ignores the scripts hookman installs", hooksPath),
	}}
}

func tempFileIssues(dir string) []Issue {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var issues []Issue
	for _, entry := range entries {
		if !entry.IsDir() && isHookTempFile(entry.Name(), "") {
			issues = append(issues, tempIssue(filepath.Join(dir, entry.Name())))
		}
	}
	return issues
}

// isHookTempFile reports whether name is a temp file written for a hook file
// named "<hook-type><ext>". Other dotfiles ending in .tmp belong to the user.
func isHookTempFile(name, ext string) bool {
	base, ok := storage.TempFileTarget(name)
	if !ok {
		return false
	}
	stem, ok := strings.CutSuffix(base, ext)
	if !ok {
		return false
	}
	_, err := hook.ParseType(stem)
	return err == nil
}

func tempIssue(path string) Issue {
	return Issue{
		Key:         filepath.Base(path),
		Description: "leftover temp file from an interrupted write",
		FixAction:   FixRemoveTemp,
		Path:        path,
	}
}
