package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/config"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completion <shell>",
		Short:     "Generate completion script",
		GroupID:   GroupUtility,
		ValidArgs: config.ValidShells,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Long: `Generate shell completion script for hookman.

Hook types and command IDs are completed from the current repository.`,
		Example: `  # Fish
  hookman completion fish > ~/.config/fish/completions/hookman.fish

  # Bash
  hookman completion bash > ~/.local/share/bash-completion/completions/hookman

  # Zsh
  hookman completion zsh > ~/.zfunc/_hookman
  # Then add ~/.zfunc to fpath in .zshrc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
