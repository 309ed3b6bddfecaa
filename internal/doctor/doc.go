// Package doctor diagnoses and repairs a repository's hookman setup.
//
// The doctor package detects and optionally repairs issues including:
//
//   - Store issues: a malformed config, hook files without commands, hook
//     files with unknown names or bad content, and temp files left behind by
//     interrupted writes.
//
//   - Installed hook issues: configured hooks that are missing, outdated,
//     shadowed by a foreign script or not executable, and hookman scripts
//     whose configuration is gone.
//
//   - Git issues: a core.hooksPath setting that makes Git ignore the
//     installed scripts.
//
// # Usage
//
//	d := doctor.New(store, workDir, version)
//	err := doctor.Run(ctx, d, false) // check only
//	err := doctor.Run(ctx, d, true)  // check and fix
//
// Each [Issue] carries a [FixAction]. Issues with [FixNone] need a manual
// edit and are only reported.
package doctor
