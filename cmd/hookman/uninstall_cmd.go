package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/apply"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/ui/prompt"
	"github.com/raphi011/hookman/internal/ui/styles"
)

func newUninstallCmd() *cobra.Command {
	var (
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:     "uninstall [<hook-type>...]",
		Short:   "Remove installed hookman scripts",
		GroupID: GroupInstall,
		Long: `Remove the scripts hookman installed into .git/hooks.

A hook that was backed up by 'hookman apply' is restored from its
<hook-type>.backup file. Hooks not written by hookman are never touched.
The configuration in .hookman/ is kept.

Asks for confirmation on a terminal unless --yes is given.`,
		Example: `  hookman uninstall
  hookman uninstall --dry-run
  hookman uninstall pre-push --yes`,
		ValidArgsFunction: completeHookTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			only, err := parseHookTypes(args)
			if err != nil {
				return err
			}

			orch := newOrchestrator(ctx, openStore(ctx))

			if !dryRun && !yes && isInteractive() {
				preview, err := orch.Uninstall(ctx, apply.Options{DryRun: true, Only: only})
				if err != nil {
					return err
				}
				if len(preview) == 0 {
					out.Println("No hookman hooks installed")
					return nil
				}
				result, err := prompt.Confirm(fmt.Sprintf("Uninstall %d hooks?", len(preview)))
				if err != nil {
					return err
				}
				if result.Cancelled || !result.Confirmed {
					out.Println("Cancelled")
					return nil
				}
			}

			results, err := orch.Uninstall(ctx, apply.Options{DryRun: dryRun, Only: only})
			for _, res := range results {
				printUninstallResult(out, res)
			}
			if err != nil {
				return err
			}
			if len(results) == 0 {
				out.Println("No hookman hooks installed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show what would be done without making changes")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func printUninstallResult(out *output.Printer, res apply.UninstallResult) {
	switch res.Action {
	case apply.WouldRestore:
		out.Println(styles.InfoStyle.Render(fmt.Sprintf("Would restore %s from %s", res.Path, res.BackupPath)))
	case apply.WouldRemove:
		out.Println(styles.InfoStyle.Render("Would remove " + res.Path))
	case apply.Restored:
		out.Println(styles.OK(fmt.Sprintf("Restored %s hook from backup", res.Type)))
	case apply.Removed:
		out.Println(styles.OK(fmt.Sprintf("Removed %s hook", res.Type)))
	}
}
