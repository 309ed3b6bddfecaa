// Package apply installs generated hook scripts into a repository.
//
// An [Orchestrator] ties a [storage.Storage] to the repository rooted at a
// working directory. [Orchestrator.Apply] walks the configured hook types in
// name order and, for every hook with at least one command, renders its
// script and installs it at <git-dir>/hooks/<type>:
//
//   - an identical script is left alone (its mode is still enforced)
//   - any other existing file is first copied to <type>.backup, unless it is
//     a hookman script and a backup already exists, which then holds the
//     original foreign hook and is kept
//   - the new script is written via temp file and rename, then made
//     executable (0755)
//
// In dry-run mode nothing on disk changes; results describe what would
// happen. The first failing hook stops the run. Hooks installed before it
// stay installed.
//
// [Orchestrator.Uninstall] reverses Apply for hookman scripts only, restoring
// backups where present. Foreign scripts are never touched.
package apply
