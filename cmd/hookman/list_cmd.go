package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/ui/static"
)

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list [<hook-type>]",
		Aliases: []string{"ls"},
		Short:   "List configured hooks and their commands",
		GroupID: GroupHooks,
		Args:    cobra.MaximumNArgs(1),
		Long: `List configured hooks and their commands.

Without an argument every configured hook is listed, sorted by name.
Commands are shown in the order they run.`,
		Example: `  hookman list
  hookman ls pre-commit
  hookman list -o json`,
		ValidArgsFunction: completeHookTypeFirstArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if err := config.ValidateOutputFormat(format); err != nil {
				return err
			}

			store, err := requireStore(ctx)
			if err != nil {
				return err
			}

			var types []hook.Type
			if len(args) == 1 {
				t, err := hook.ParseType(args[0])
				if err != nil {
					return err
				}
				types = []hook.Type{t}
			} else {
				types, err = store.ListHooks()
				if err != nil {
					return err
				}
			}

			hooks := make([]*hook.Hook, 0, len(types))
			for _, t := range types {
				h, err := store.LoadHook(t)
				if err != nil {
					return err
				}
				hooks = append(hooks, h)
			}
			l.Debug("listing hooks", "hooks", len(hooks))

			if format == "json" || format == "yaml" {
				return writeStructured(out.Writer(), format, hooks)
			}

			var rows [][]string
			for _, h := range hooks {
				rows = append(rows, static.CommandRows(h)...)
			}

			if len(rows) == 0 {
				if len(args) == 1 {
					out.Printf("No commands configured for %s\n", types[0])
					return nil
				}
				out.Println("No hooks configured yet")
				out.Println("Use 'hookman add' to start adding hooks")
				return nil
			}

			out.Print(static.RenderTable(static.CommandHeaders, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format: table, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(config.ValidOutputFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
