package hook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Type identifies a Git hook.
type Type int

const (
	PreCommit Type = iota
	PrePush
	CommitMsg
	PostCommit
	PreRebase
	PostCheckout
	PostMerge
	PreReceive
	Update
	PostReceive
	PrepareCommitMsg
	PostUpdate
	PreApplyPatch
	PostApplyPatch
	PreMergeCommit
	PostRewrite
)

// Default is the hook type used when none is given.
const Default = PreCommit

var typeNames = [...]string{
	PreCommit:        "pre-commit",
	PrePush:          "pre-push",
	CommitMsg:        "commit-msg",
	PostCommit:       "post-commit",
	PreRebase:        "pre-rebase",
	PostCheckout:     "post-checkout",
	PostMerge:        "post-merge",
	PreReceive:       "pre-receive",
	Update:           "update",
	PostReceive:      "post-receive",
	PrepareCommitMsg: "prepare-commit-msg",
	PostUpdate:       "post-update",
	PreApplyPatch:    "pre-applypatch",
	PostApplyPatch:   "post-applypatch",
	PreMergeCommit:   "pre-merge-commit",
	PostRewrite:      "post-rewrite",
}

// String returns the canonical hook name, e.g. "pre-commit".
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Valid reports whether t is one of the known hook types.
func (t Type) Valid() bool {
	return t >= 0 && int(t) < len(typeNames)
}

// Types returns all hook types in declaration order.
func Types() []Type {
	types := make([]Type, len(typeNames))
	for i := range typeNames {
		types[i] = Type(i)
	}
	return types
}

// TypeNames returns the canonical names of all hook types.
func TypeNames() []string {
	return slices.Clone(typeNames[:])
}

// ParseType returns the hook type with the given canonical name.
// Matching is exact: names are lowercase and hyphenated.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, &ParseError{Input: name, Suggestions: suggest(name, typeNames[:])}
}

// ParseTypeOrDefault is like ParseType but returns Default for an empty name.
func ParseTypeOrDefault(name string) (Type, error) {
	if name == "" {
		return Default, nil
	}
	return ParseType(name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid hook type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// suggest returns up to three candidates that fuzzy-match input, best first.
func suggest(input string, candidates []string) []string {
	if input == "" || len(candidates) == 0 {
		return nil
	}
	matches := fuzzy.Find(input, candidates)
	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// didYouMean formats suggestions as ` (did you mean "a" or "b"?)`.
func didYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return " (did you mean " + strings.Join(quoted, " or ") + "?)"
}
