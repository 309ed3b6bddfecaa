// Package config holds the repository-wide hookman record and the
// process-level settings shared between commands.
//
// The durable record lives at .hookman/config.toml and only carries the
// version of hookman that initialized the repository:
//
//	version = "1.2.0"
//
// A missing file is not an error: callers get [Default] for the running
// version. Reading and writing the record is done by the storage package;
// this package only defines its shape and validation.
//
// # Working Directory
//
// Every path hookman touches is derived from the working directory, which
// commands receive through the context ([WithWorkDir], [WorkDirFromContext])
// rather than from a cached global. This keeps behavior correct when the
// directory is overridden with -C.
package config
