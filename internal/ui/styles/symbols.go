package styles

import "github.com/raphi011/hookman/internal/script"

// Status symbols
const (
	SymbolOK     = "✓"
	SymbolWarn   = "⚠"
	SymbolFail   = "✗"
	SymbolBullet = "•"
)

// OK prefixes msg with a green checkmark.
func OK(msg string) string {
	return SuccessStyle.Render(SymbolOK) + " " + msg
}

// Warn prefixes msg with a warning sign.
func Warn(msg string) string {
	return WarningStyle.Render(SymbolWarn) + " " + msg
}

// Fail prefixes msg with a red cross.
func Fail(msg string) string {
	return ErrorStyle.Render(SymbolFail) + " " + msg
}

// FormatState returns the installed-hook state with a colored symbol.
func FormatState(s script.State) string {
	switch s {
	case script.UpToDate:
		return OK(string(s))
	case script.Outdated, script.NotInstalled:
		return Warn(string(s))
	case script.Foreign:
		return InfoStyle.Render(SymbolBullet + " " + string(s))
	case script.Orphaned:
		return Fail(string(s))
	default:
		return MutedStyle.Render(string(s))
	}
}
