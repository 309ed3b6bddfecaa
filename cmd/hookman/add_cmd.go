package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/ui/prompt"
	"github.com/raphi011/hookman/internal/ui/styles"
)

func newAddCmd() *cobra.Command {
	var (
		id          string
		description string
	)

	cmd := &cobra.Command{
		Use:     "add <hook-type> <command>",
		Short:   "Add a command to a hook",
		GroupID: GroupHooks,
		Args:    cobra.ExactArgs(2),
		Long: `Add a command to a hook.

Commands run in the order they were added. The command text is written
into the generated hook script verbatim, so quote it the way your shell
expects. The ID must be unique within the hook; it is used to remove the
command later.

When --id is omitted and stdin is a terminal, you are prompted for it.`,
		Example: `  hookman add pre-commit "go vet ./..." --id vet
  hookman add pre-push "go test ./..." -i test -d "Run unit tests"`,
		ValidArgsFunction: completeHookTypeFirstArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			t, err := hook.ParseType(args[0])
			if err != nil {
				return err
			}
			command := args[1]

			store, err := requireStore(ctx)
			if err != nil {
				return err
			}

			h, err := store.LoadHook(t)
			if err != nil {
				return err
			}

			if id == "" {
				if !isInteractive() {
					return errors.New("--id is required")
				}
				result, err := prompt.TextInput("Command ID:", idPlaceholder(command), func(v string) error {
					return validateNewID(h, v)
				})
				if err != nil {
					return err
				}
				if result.Cancelled {
					out.Println("Cancelled")
					return nil
				}
				id = result.Value
			}

			if err := h.Add(hook.Command{ID: id, Command: command, Description: description}); err != nil {
				return err
			}
			if err := store.SaveHook(h); err != nil {
				return fmt.Errorf("save %s hook: %w", t, err)
			}
			l.Debug("saved hook", "hook", t, "commands", len(h.Commands))

			out.Println(styles.OK(fmt.Sprintf("Added command '%s' to %s hook", id, t)))
			if description != "" {
				out.Printf("  Description: %s\n", description)
			}
			out.Printf("  Command: %s\n", command)
			return nil
		},
	}

	cmd.Flags().StringVarP(&id, "id", "i", "", "Unique identifier for this command")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Human-readable description of the command")

	return cmd
}

// idPlaceholder suggests the command's program name as its ID.
func idPlaceholder(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// validateNewID rejects IDs that Hook.Add would refuse, so the prompt can
// ask again instead of failing after the fact.
func validateNewID(h *hook.Hook, id string) error {
	if id == "" {
		return errors.New("ID must not be empty")
	}
	if _, taken := h.Find(id); taken {
		return fmt.Errorf("ID %q is already used in %s", id, h.Type)
	}
	return nil
}
