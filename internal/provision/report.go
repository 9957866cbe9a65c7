package provision

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rkristelijn/glab-tui-install/internal/branding"
	"github.com/rkristelijn/glab-tui-install/internal/toolchain"
)

// Reporter prints human-readable status lines. Colors are only emitted when
// the writer is a terminal.
type Reporter struct {
	out io.Writer
	err io.Writer

	info    lipgloss.Style
	success lipgloss.Style
	hint    lipgloss.Style
	failure lipgloss.Style
	remedy  lipgloss.Style
}

// NewReporter returns a Reporter writing progress to out and failures to errOut.
func NewReporter(out, errOut io.Writer) *Reporter {
	ro := lipgloss.NewRenderer(out)
	re := lipgloss.NewRenderer(errOut)
	return &Reporter{
		out:     out,
		err:     errOut,
		info:    ro.NewStyle().Bold(true),
		success: ro.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		hint:    ro.NewStyle().Foreground(lipgloss.Color("6")),
		failure: re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		remedy:  re.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Start announces the install.
func (r *Reporter) Start() {
	fmt.Fprintln(r.out, r.info.Render(fmt.Sprintf("🚀 Installing %s binary...", branding.BinaryName())))
}

// Building announces the build step.
func (r *Reporter) Building() {
	fmt.Fprintln(r.out, r.info.Render(fmt.Sprintf("🏗️  Building %s from source...", branding.BinaryName())))
}

// Success prints the success status and the usage hint.
func (r *Reporter) Success() {
	fmt.Fprintln(r.out, r.success.Render(fmt.Sprintf("✅ %s installed successfully!", branding.BinaryName())))
	fmt.Fprintln(r.out, r.hint.Render("🎯 Try: "+branding.UsageHint()))
}

// Failure prints err with the fixed failure prefix. A missing toolchain
// also gets remediation guidance.
func (r *Reporter) Failure(err error) {
	var missing *toolchain.MissingError
	if errors.As(err, &missing) {
		fmt.Fprintln(r.err, r.failure.Render(fmt.Sprintf("❌ Go is required to build %s", branding.BinaryName())))
		if missing.InstallURL != "" {
			fmt.Fprintln(r.err, r.remedy.Render("💡 Install Go from "+missing.InstallURL))
		}
	}
	fmt.Fprintln(r.err, r.failure.Render(fmt.Sprintf("❌ Failed to install %s:", branding.BinaryName()))+" "+err.Error())
}
