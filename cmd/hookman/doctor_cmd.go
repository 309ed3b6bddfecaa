package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/doctor"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose and repair issues",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Diagnose and repair store and installed-hook issues.

Checks:
- .hookman/config.toml and hook files parse
- Hook files hold at least one command
- No temp files are left over from interrupted writes
- Installed hooks match the configuration and are executable
- core.hooksPath does not redirect Git away from .git/hooks`,
		Example: `  hookman doctor          # Check for issues
  hookman doctor --fix    # Auto-fix recoverable issues`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d := doctor.New(openStore(ctx), config.WorkDirFromContext(ctx), version)
			return doctor.Run(ctx, d, fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Auto-fix recoverable issues")

	return cmd
}
