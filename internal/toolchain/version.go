package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// "go version go1.22.3 linux/amd64", "go version go1.23rc1 darwin/arm64"
	goVersionRe = regexp.MustCompile(`\bgo(\d+(?:\.\d+){0,2}(?:rc\d+|beta\d+)?)\b`)
	releaseRe   = regexp.MustCompile(`^(\d+(?:\.\d+){0,2})(?:(rc|beta)(\d+))?$`)
)

// Version runs the toolchain's version command and parses the reported
// release. Development builds that report no release number yield an error.
func (t *Toolchain) Version(ctx context.Context) (*semver.Version, error) {
	bin, err := t.Path()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, t.missing(err)
	}
	return ParseVersionOutput(out.String())
}

// ParseVersionOutput extracts the release from "go version" output.
func ParseVersionOutput(output string) (*semver.Version, error) {
	m := goVersionRe.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("no release number in toolchain output %q", strings.TrimSpace(output))
	}
	return ParseVersion(m[1])
}

// ParseVersion parses a Go release ("1.22", "v1.22.3", "go1.21.0",
// "1.23rc1"). Release candidates sort before the final release.
func ParseVersion(v string) (*semver.Version, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "go")
	v = strings.TrimPrefix(v, "v")
	if m := releaseRe.FindStringSubmatch(v); m != nil && m[2] != "" {
		v = m[1] + "-" + m[2] + "." + m[3]
	}
	sv, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("parsing toolchain version %q: %w", v, err)
	}
	return sv, nil
}

// CheckMinimum returns an *OutdatedError when the installed toolchain is
// older than required. An empty requirement always passes.
func (t *Toolchain) CheckMinimum(ctx context.Context, required string) error {
	if required == "" {
		return nil
	}
	want, err := ParseVersion(required)
	if err != nil {
		return err
	}
	have, err := t.Version(ctx)
	if err != nil {
		return err
	}
	if have.LessThan(want) {
		return &OutdatedError{
			Binary:   t.Binary,
			Required: want.Original(),
			Found:    have.Original(),
		}
	}
	return nil
}
