package script

// State describes an installed hook relative to its configuration.
type State string

const (
	// NotInstalled: commands are configured but no script is installed.
	NotInstalled State = "not-installed"
	// UpToDate: the installed script matches the generated one.
	UpToDate State = "up-to-date"
	// Outdated: a managed script is installed but differs from the generated one.
	Outdated State = "outdated"
	// Foreign: a script not written by hookman occupies the slot.
	Foreign State = "foreign"
	// Orphaned: a managed script is installed but no commands are configured.
	Orphaned State = "orphaned"
	// Unconfigured: nothing configured and nothing installed.
	Unconfigured State = "unconfigured"
)

// Classify compares an installed script with the one generated from the
// current configuration. installed is nil when no script exists; generated
// is empty when the hook has no commands.
func Classify(installed []byte, generated string) State {
	switch {
	case installed == nil && generated == "":
		return Unconfigured
	case installed == nil:
		return NotInstalled
	case !IsManaged(installed):
		return Foreign
	case generated == "":
		return Orphaned
	case string(installed) == generated:
		return UpToDate
	default:
		return Outdated
	}
}

// NeedsApply reports whether running apply would change the installed script.
func (s State) NeedsApply() bool {
	return s == NotInstalled || s == Outdated || s == Foreign
}
