package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/apply"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/ui/styles"
)

func newApplyCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "apply [<hook-type>...]",
		Short:   "Install configured hooks into the repository",
		GroupID: GroupInstall,
		Long: `Install configured hooks into the repository's Git hooks directory.

Each hook with at least one command becomes an executable shell script at
.git/hooks/<hook-type> that runs the commands in order and stops at the
first failure. An existing hook that differs from the generated script is
copied to <hook-type>.backup first. When the existing hook is itself a
hookman script and a backup is already present, the backup is kept as is:
it holds the hook that was installed before hookman.

Applying is idempotent: hooks that are already up to date are left alone.
Pass hook types to apply only those hooks.`,
		Example: `  hookman apply
  hookman apply --dry-run
  hookman apply pre-commit pre-push`,
		ValidArgsFunction: completeHookTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			only, err := parseHookTypes(args)
			if err != nil {
				return err
			}

			store, err := requireStore(ctx)
			if err != nil {
				return err
			}

			results, err := newOrchestrator(ctx, store).Apply(ctx, apply.Options{DryRun: dryRun, Only: only})
			if len(results) == 0 && err == nil {
				out.Println(styles.Warn("No hooks configured to apply"))
				return nil
			}

			if dryRun {
				out.Println(styles.WarningStyle.Render("DRY RUN - No changes will be made"))
				out.Println()
			}
			for _, res := range results {
				printApplyResult(out, res, dryRun)
			}
			if err != nil {
				return err
			}

			if !dryRun {
				out.Println()
				out.Println(styles.SuccessStyle.Render("All hooks applied successfully!"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show what would be done without making changes")

	return cmd
}

func printApplyResult(out *output.Printer, res apply.Result, dryRun bool) {
	switch res.Action {
	case apply.WouldInstall:
		out.Println(styles.InfoStyle.Render("Would create: " + res.Path))
		if res.BackupPath != "" {
			out.Println(styles.Warn("Would back up existing hook to " + res.BackupPath))
		}
		printScript(out, res.Script)
	case apply.Unchanged:
		out.Println(styles.OK(fmt.Sprintf("%s hook is up to date", res.Type)))
		if dryRun {
			out.Println(styles.InfoStyle.Render("Path: " + res.Path))
			printScript(out, res.Script)
		}
	case apply.Installed:
		if res.BackupPath != "" {
			out.Println(styles.Warn(fmt.Sprintf("Backed up existing %s to %s", res.Type, res.BackupPath)))
		}
		out.Println(styles.OK(fmt.Sprintf("Applied %s hook", res.Type)))
	}
}

// printScript writes the script unstyled so the preview matches the
// installed file byte for byte.
func printScript(out *output.Printer, script string) {
	out.Println(styles.MutedStyle.Render("Contents:"))
	out.Println(styles.MutedStyle.Render("---"))
	out.Print(script)
	out.Println(styles.MutedStyle.Render("---"))
	out.Println()
}
