// Package storage persists hook definitions and the repository config.
//
// The layout is rooted at the working directory:
//
//	.hookman/
//	  config.toml          # version = "..."
//	  hooks/
//	    <hook-type>.toml   # [[commands]] id, command, description
//
// There is one file per configured hook type; an absent file is the
// canonical empty hook. [Storage] is the capability interface callers depend
// on and [TOMLStore] is its file-backed implementation.
//
// All records are written atomically: data goes to a temp file in the target
// directory which is then renamed over the destination, so a failed write
// never leaves a truncated record behind. Concurrent writers are not
// coordinated; the last rename wins.
package storage
