package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/script"
	"github.com/raphi011/hookman/internal/ui/static"
)

func newStatusCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Compare configured hooks with installed hooks",
		GroupID: GroupInstall,
		Args:    cobra.NoArgs,
		Long: `Compare configured hooks with the scripts installed in .git/hooks.

States:
  up-to-date     installed script matches the configuration
  outdated       installed hookman script differs from the configuration
  not-installed  hook is configured but no script is installed
  foreign        a script not written by hookman is installed
  orphaned       a hookman script is installed but no commands are configured`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if err := config.ValidateOutputFormat(format); err != nil {
				return err
			}

			store, err := requireStore(ctx)
			if err != nil {
				return err
			}

			statuses, err := newOrchestrator(ctx, store).Status(ctx)
			if err != nil {
				return err
			}

			if format == "json" || format == "yaml" {
				return writeStructured(out.Writer(), format, statuses)
			}

			if len(statuses) == 0 {
				out.Println("No hooks configured or installed")
				return nil
			}

			out.Print(static.RenderTable(static.StatusHeaders, static.StatusRows(statuses)))

			for _, s := range statuses {
				if s.State.NeedsApply() {
					out.Println()
					out.Println("Run 'hookman apply' to install pending hooks.")
					break
				}
			}
			for _, s := range statuses {
				if s.State == script.Orphaned {
					out.Println()
					out.Println("Run 'hookman uninstall' to remove orphaned hooks.")
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format: table, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(config.ValidOutputFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
