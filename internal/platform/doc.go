// Package platform maps the host's raw operating-system and architecture
// identifiers to the canonical GOOS/GOARCH pair understood by the Go
// toolchain, and applies target-aware file permissions. Resolution is pure:
// it performs no I/O and fails closed on anything it does not recognize.
package platform
