// Package script renders a hook's command list into the shell script Git
// runs, and classifies scripts already installed in a hooks directory.
//
// Generated scripts are a pure function of the hook type and its ordered
// commands. They start with a shebang and "set -e" so the first failing
// command aborts the rest, carry a provenance marker so managed scripts can
// be told apart from foreign ones, and emit every command text verbatim:
// no quoting, escaping or substitution is applied.
package script
