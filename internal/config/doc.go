// Package config manages installer settings stored at ~/.glab-tui/config.yaml
// and GLAB_TUI_* environment variables: the package root, the toolchain
// binary, linker flags, install mode and host identifier overrides. The
// file is validated against an embedded JSON schema.
package config
