package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/log"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	noColor bool
	dir     string
)

// Command group IDs for organizing help output
const (
	GroupHooks   = "hooks"
	GroupInstall = "install"
	GroupUtility = "utility"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hookman",
	Short: "Git hook manager",
	Long: `hookman keeps Git hook commands in a versioned .hookman/ directory and
installs them as generated scripts into the repository's hooks directory.

Hook commands are stored per hook type in .hookman/hooks/<hook-type>.toml.
'hookman apply' turns each configured hook into a shell script that runs its
commands in order and stops at the first failure. Existing hooks are backed
up before they are replaced.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			styles.Apply(styles.NoneTheme)
		}

		// Flags are parsed by now, so the logger sees -v/-q
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		if dir != "" {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolve --dir: %w", err)
			}
			ctx = config.WithWorkDir(ctx, abs)
		}
		cmd.SetContext(ctx)
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, output.Stdout())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'hookman -h' for help")
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", "", "Run as if hookman was started in `path`")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	_ = rootCmd.MarkPersistentFlagDirname("dir")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupInstall, Title: "Install Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	// Hook commands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())

	// Install commands
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newUninstallCmd())

	// Utility commands
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
