package main

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/hook"
)

// completionContext returns the command's context with the -C directory
// applied. Completion runs before the root pre-run sees the target's flags.
func completionContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if d, _ := cmd.Flags().GetString("dir"); d != "" {
		if abs, err := filepath.Abs(d); err == nil {
			ctx = config.WithWorkDir(ctx, abs)
		}
	}
	return ctx
}

// matchPrefix returns the candidates starting with toComplete, skipping exclude.
func matchPrefix(candidates []string, toComplete string, exclude []string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) && !slices.Contains(exclude, c) {
			matches = append(matches, c)
		}
	}
	return matches
}

// completeHookTypeFirstArg completes a hook type as the first positional argument.
func completeHookTypeFirstArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return matchPrefix(hook.TypeNames(), toComplete, nil), cobra.ShellCompDirectiveNoFileComp
}

// completeHookTypes completes any number of distinct hook types.
func completeHookTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return matchPrefix(hook.TypeNames(), toComplete, args), cobra.ShellCompDirectiveNoFileComp
}

// completeRemoveArgs completes the hook type, then the IDs of its commands.
func completeRemoveArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return matchPrefix(hook.TypeNames(), toComplete, nil), cobra.ShellCompDirectiveNoFileComp
	case 1:
		t, err := hook.ParseType(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		store := openStore(completionContext(cmd))
		if !store.IsInitialized() {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		h, err := store.LoadHook(t)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return matchPrefix(h.IDs(), toComplete, nil), cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
