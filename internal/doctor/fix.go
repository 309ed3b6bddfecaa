package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/raphi011/hookman/internal/apply"
	"github.com/raphi011/hookman/internal/config"
	"github.com/raphi011/hookman/internal/hook"
	"github.com/raphi011/hookman/internal/output"
	"github.com/raphi011/hookman/internal/ui/styles"
)

// fixAll applies fixes for all fixable issues. Store repairs run first so
// re-applied hooks see the repaired configuration.
func (d *Doctor) fixAll(ctx context.Context, issues []Issue) error {
	out := output.FromContext(ctx)
	out.Println("\nFixing issues...")

	var fixed, failed int
	var toApply, toUninstall []hook.Type

	for _, issue := range issues {
		var err error
		switch issue.FixAction {
		case FixNone:
			continue
		case FixApply:
			toApply = append(toApply, issue.Hook)
			continue
		case FixUninstall:
			toUninstall = append(toUninstall, issue.Hook)
			continue
		case FixRemoveTemp:
			err = os.Remove(issue.Path)
		case FixCreateHooksDir:
			err = os.MkdirAll(issue.Path, 0o755)
		case FixDeleteHookFile:
			err = d.store.DeleteHook(issue.Hook)
		case FixResetConfig:
			err = d.store.SaveConfig(config.Default(d.version))
		default:
			err = fmt.Errorf("unknown fix action %q", issue.FixAction)
		}

		if err != nil {
			out.Printf("  %s\n", styles.Fail(fmt.Sprintf("Failed to fix %s: %v", issue.Key, err)))
			failed++
			continue
		}
		out.Printf("  %s\n", styles.OK(fixedMessage(issue)))
		fixed++
	}

	if len(toApply) > 0 {
		results, err := d.orch.Apply(ctx, apply.Options{Only: toApply})
		for _, res := range results {
			out.Printf("  %s\n", styles.OK(fmt.Sprintf("Applied %s", res.Type)))
			fixed++
		}
		if err != nil {
			out.Printf("  %s\n", styles.Fail(fmt.Sprintf("Failed to apply hooks: %v", err)))
			failed += len(toApply) - len(results)
		}
	}

	if len(toUninstall) > 0 {
		results, err := d.orch.Uninstall(ctx, apply.Options{Only: toUninstall})
		for _, res := range results {
			out.Printf("  %s\n", styles.OK(fmt.Sprintf("Uninstalled %s (%s)", res.Type, res.Action)))
			fixed++
		}
		if err != nil {
			out.Printf("  %s\n", styles.Fail(fmt.Sprintf("Failed to uninstall hooks: %v", err)))
			failed += len(toUninstall) - len(results)
		}
	}

	if failed > 0 {
		out.Printf("\nFixed %d issues, %d failed.\n", fixed, failed)
		return fmt.Errorf("%d issues could not be fixed", failed)
	}
	out.Printf("\nFixed %d issues.\n", fixed)
	return nil
}

func fixedMessage(issue Issue) string {
	switch issue.FixAction {
	case FixRemoveTemp:
		return "Removed " + issue.Key
	case FixCreateHooksDir:
		return "Created hooks directory"
	case FixDeleteHookFile:
		return "Deleted empty " + issue.Key
	case FixResetConfig:
		return "Reset " + issue.Key
	default:
		return "Fixed " + issue.Key
	}
}
