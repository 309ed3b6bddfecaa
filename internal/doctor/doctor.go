package doctor

import (
	"context"
	"fmt"

	"github.com/raphi011/hookman/internal/apply"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/storage"
	"github.com/raphi011/hookman/internal/ui/styles"
)

// Doctor checks one working directory.
type Doctor struct {
	store   *storage.TOMLStore
	orch    *apply.Orchestrator
	workDir string
	version string
}

// New returns a Doctor for the repository rooted at workDir. version is
// written when a malformed config is reset.
func New(store *storage.TOMLStore, workDir, version string) *Doctor {
	return &Doctor{
		store:   store,
		orch:    apply.New(store, workDir),
		workDir: workDir,
		version: version,
	}
}

// Check runs all checks and returns the issues found.
func (d *Doctor) Check(ctx context.Context) ([]Issue, IssueStats, error) {
	var stats IssueStats

	if !d.store.IsInitialized() {
		return nil, stats, storage.ErrNotInitialized
	}
	hooksDir, err := d.orch.HooksDir()
	if err != nil {
		return nil, stats, err
	}

	storeIssues, err := d.checkStore(&stats)
	if err != nil {
		return nil, stats, err
	}
	hookIssues := d.checkInstalled(ctx, hooksDir, &stats)
	gitIssues := d.checkGit(ctx)

	stats.StoreIssues = len(storeIssues)
	stats.HookIssues = len(hookIssues)
	stats.GitIssues = len(gitIssues)

	var all []Issue
	all = append(all, withCategory(storeIssues, CategoryStore)...)
	all = append(all, withCategory(hookIssues, CategoryHooks)...)
	all = append(all, withCategory(gitIssues, CategoryGit)...)
	return all, stats, nil
}

// Run performs diagnostic checks, prints a report and optionally fixes issues.
func Run(ctx context.Context, d *Doctor, fix bool) error {
	out := output.FromContext(ctx)

	out.Println("Checking store, installed hooks and git configuration...")
	issues, stats, err := d.Check(ctx)
	if err != nil {
		return err
	}

	printSummary(out, stats)

	if len(issues) == 0 {
		out.Println()
		out.Println(styles.OK("No issues found"))
		return nil
	}

	out.Printf("\nFound %d issues:\n", len(issues))
	printIssuesByCategory(out, issues)

	if fix {
		return d.fixAll(ctx, issues)
	}

	if hasFixable(issues) {
		out.Println("\nRun 'hookman doctor --fix' to repair.")
	}
	return nil
}

func printSummary(out *output.Printer, stats IssueStats) {
	out.Println()
	out.Printf("  %s\n", styles.OK(fmt.Sprintf("%d hooks configured", stats.HooksConfigured)))
	if stats.HooksHealthy > 0 {
		out.Printf("  %s\n", styles.OK(fmt.Sprintf("%d installed hooks up to date", stats.HooksHealthy)))
	}
	if stats.StoreIssues > 0 {
		out.Printf("  %s\n", styles.Warn(fmt.Sprintf("%d store issues", stats.StoreIssues)))
	}
	if stats.HookIssues > 0 {
		out.Printf("  %s\n", styles.Warn(fmt.Sprintf("%d installed hook issues", stats.HookIssues)))
	}
	if stats.GitIssues > 0 {
		out.Printf("  %s\n", styles.Warn(fmt.Sprintf("%d git configuration issues", stats.GitIssues)))
	}
}

func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryStore: "Store issues",
		CategoryHooks: "Installed hook issues",
		CategoryGit:   "Git issues",
	}

	for _, cat := range []IssueCategory{CategoryStore, CategoryHooks, CategoryGit} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			line := fmt.Sprintf("  %s %s: %s", styles.SymbolBullet, issue.Key, issue.Description)
			if !issue.Fixable() {
				line += styles.MutedStyle.Render(" (manual)")
			}
			out.Println(line)
		}
	}
}

func withCategory(issues []Issue, cat IssueCategory) []Issue {
	for i := range issues {
		issues[i].Category = cat
	}
	return issues
}

func hasFixable(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Fixable() {
			return true
		}
	}
	return false
}
