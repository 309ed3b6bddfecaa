// Package git locates the Git repository hookman installs into.
//
// [FindGitDir] is a pure filesystem lookup: it inspects <dir>/.git and never
// walks up to parent directories, so hookman always operates on the
// repository rooted at its working directory. Both layouts are supported:
//
//   - .git is a directory (regular clone)
//   - .git is a file containing "gitdir: <path>" (worktrees, submodules)
//
// Scripts are installed into [HooksDir] of the located directory.
//
// [HooksPathOverride] shells out to the git CLI to read core.hooksPath, which
// makes Git ignore that directory. It is used for diagnostics only.
package git
