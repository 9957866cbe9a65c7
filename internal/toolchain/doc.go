// Package toolchain wraps the external Go toolchain used to produce the
// glab-tui binary: a liveness probe ("go version"), version parsing for
// minimum-version checks, construction of the cross-compilation
// environment, and the build invocation itself. Output of the build is
// streamed to the configured writers, never captured.
package toolchain
