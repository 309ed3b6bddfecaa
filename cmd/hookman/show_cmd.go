package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/script"
)

func newShowCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "show [<hook-type>]",
		Short:   "Print the script generated for a hook",
		GroupID: GroupHooks,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the script 'hookman apply' would install for a hook.

Defaults to pre-commit when no hook type is given. Nothing is written to
the hooks directory.`,
		Example: `  hookman show
  hookman show pre-push --copy`,
		ValidArgsFunction: completeHookTypeFirstArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			t, err := hook.ParseTypeOrDefault(name)
			if err != nil {
				return err
			}

			store, err := requireStore(ctx)
			if err != nil {
				return err
			}
			h, err := store.LoadHook(t)
			if err != nil {
				return err
			}
			if h.Empty() {
				return fmt.Errorf("no commands configured for %s", t)
			}

			s, err := script.Generate(h)
			if err != nil {
				return err
			}

			// Copy to clipboard if requested
			if copyToClipboard {
				if err := clipboard.WriteAll(s); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			out.Print(s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the script to the clipboard")

	return cmd
}
