package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/ui/prompt"
	"github.com/raphi011/hookman/internal/ui/styles"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <hook-type> [<id>]",
		Aliases: []string{"rm"},
		Short:   "Remove a command from a hook",
		GroupID: GroupHooks,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Remove a command from a hook by its ID.

The remaining commands keep their order. When the ID is omitted and stdin
is a terminal, you can pick the command from a list.

The installed hook script is not touched; run 'hookman apply' afterwards.`,
		Example: `  hookman remove pre-commit vet
  hookman rm pre-push`,
		ValidArgsFunction: completeRemoveArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			t, err := hook.ParseType(args[0])
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

			var id string
			if len(args) > 1 {
				id = args[1]
			} else {
				if !isInteractive() {
					return fmt.Errorf("missing command ID (one of: %v)", h.IDs())
				}
				if h.Empty() {
					out.Printf("No commands configured for %s\n", t)
					return nil
				}
				options := make([]prompt.Option, len(h.Commands))
				for i, c := range h.Commands {
					options[i] = prompt.Option{Value: c.ID, Detail: c.Command}
				}
				result, err := prompt.Select(fmt.Sprintf("Remove a command from %s", t), options)
				if err != nil {
					return err
				}
				if result.Cancelled {
					out.Println("Cancelled")
					return nil
				}
				id = result.Value
			}

			removed, err := h.Remove(id)
			if err != nil {
				return err
			}
			if err := store.SaveHook(h); err != nil {
				return fmt.Errorf("save %s hook: %w", t, err)
			}
			l.Debug("removed command", "hook", t, "id", removed.ID, "remaining", len(h.Commands))

			out.Println(styles.OK(fmt.Sprintf("Removed command '%s' from %s hook", removed.ID, t)))
			return nil
		},
	}

	return cmd
}
