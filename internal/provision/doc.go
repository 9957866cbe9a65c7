// Package provision builds the glab-tui binary for the current host and
// installs it under <package-root>/bin.
//
// A run walks a fixed sequence of states: detect (resolve the host to a
// canonical platform), locate (compute the install target and create its
// directory), build (probe the toolchain and invoke it), finalize (set
// executable permissions) and verify (check the produced file). Every
// failure aborts the run before the next state's side effects happen, so
// there is nothing to roll back; re-running is safe because directory
// creation and file overwrite are idempotent.
package provision
