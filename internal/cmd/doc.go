// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// Failures carry the command's stderr in the error message, and every
// invocation is logged with its duration when verbose logging is enabled.
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "config", "--get", "core.hooksPath")
//	if err != nil {
//	    // err contains stderr output if available
//	}
//
// hookman shells out to the git CLI rather than using a Go git library so
// the user's own git configuration is what gets read.
package cmd
