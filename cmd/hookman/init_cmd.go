package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/git"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/storage"
	"github.com/raphi011/hookman/internal/ui/styles"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize hookman in the current repository",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Initialize hookman in the current repository.

Creates .hookman/config.toml and an empty .hookman/hooks/ directory.
Must be run from the root of a Git repository (the directory containing
.git). Running init again is harmless.`,
		Example: `  hookman init
  hookman -C ~/src/project init`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			workDir := config.WorkDirFromContext(ctx)
			gitDir, err := git.FindGitDir(workDir)
			if err != nil {
				return err
			}
			l.Debug("found git dir", "path", gitDir)

			store := openStore(ctx)
			if store.IsInitialized() {
				out.Println(styles.Warn("hookman is already initialized in this repository"))
				return nil
			}

			if err := store.Init(); err != nil {
				return fmt.Errorf("initialize: %w", err)
			}

			out.Println(styles.OK("Initialized hookman in " + storage.DirName + "/"))
			out.Println("  Use 'hookman add' to start adding hooks")
			return nil
		},
	}

	return cmd
}
