// Package hook defines the in-memory model of managed Git hooks.
//
// A [Hook] owns an ordered list of [Command] values for one hook [Type].
// Commands run in insertion order and are identified by an ID that is unique
// within their hook. The hook type is a lookup key: storage derives it from
// the file a hook was loaded from and never persists it.
//
// # Hook Types
//
// [Type] is a closed enumeration of the Git hook names hookman manages. Each
// value maps to a canonical lowercase-hyphenated name (e.g. "pre-commit")
// which is used both as the storage file stem and as the installed hook's
// file name:
//
//	t, err := hook.ParseType("pre-push")
//	fmt.Println(t) // pre-push
//
// Unknown names fail with a [*ParseError] carrying fuzzy-matched suggestions.
//
// # Mutation
//
// [Hook.Add] validates a command and rejects duplicate IDs; [Hook.Remove]
// fails if the ID is absent. Both failures are reported as [*CommandError]
// wrapping [ErrDuplicateID] or [ErrCommandNotFound], and leave the hook
// unchanged.
package hook
