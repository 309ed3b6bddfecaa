// Package prompt implements the interactive questions hookman asks when a
// required argument is missing: a command ID to add, a command to remove,
// or confirmation before uninstalling hooks.
//
// Prompts draw on stderr so stdout stays clean for data. Callers check that
// stdin is a terminal first.
package prompt
