package provision

import "fmt"

// Mode selects how the binary is obtained.
type Mode string

const (
	// ModeSource builds the binary with the local toolchain.
	ModeSource Mode = "source"
	// ModeRelease would download a pre-built release artifact. Not implemented.
	ModeRelease Mode = "release"
)

// ParseMode validates a mode name. The empty string selects ModeSource.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeSource:
		return ModeSource, nil
	case ModeRelease:
		return ModeRelease, nil
	default:
		return "", fmt.Errorf("unknown install mode %q: supported modes are %q and %q", s, ModeSource, ModeRelease)
	}
}
