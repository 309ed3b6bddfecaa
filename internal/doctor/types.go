package doctor

import "github.com/raphi011/hookman/internal/hook"

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryStore represents problems with the .hookman directory.
	CategoryStore IssueCategory = "store"
	// CategoryHooks represents problems with installed hook scripts.
	CategoryHooks IssueCategory = "hooks"
	// CategoryGit represents git configuration that affects hooks.
	CategoryGit IssueCategory = "git"
)

// FixAction is what --fix does for an issue.
type FixAction string

const (
	FixNone           FixAction = ""
	FixRemoveTemp     FixAction = "remove_temp"
	FixCreateHooksDir FixAction = "create_hooks_dir"
	FixDeleteHookFile FixAction = "delete_hook_file"
	FixResetConfig    FixAction = "reset_config"
	FixApply          FixAction = "apply"
	FixUninstall      FixAction = "uninstall"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // file name or hook type
	Description string        // human-readable description
	FixAction   FixAction     // what --fix would do
	Category    IssueCategory // issue category
	Path        string        // affected file
	Hook        hook.Type     // affected hook, for hook-scoped fixes
}

// Fixable reports whether --fix can repair the issue.
func (i Issue) Fixable() bool {
	return i.FixAction != FixNone
}

// IssueStats tracks counts by category.
type IssueStats struct {
	HooksConfigured int // hook files with at least one command
	HooksHealthy    int // installed scripts matching their configuration
	StoreIssues     int
	HookIssues      int
	GitIssues       int
}
