package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rkristelijn/glab-tui-install/internal/branding"
	"github.com/rkristelijn/glab-tui-install/internal/config"
	"github.com/rkristelijn/glab-tui-install/internal/platform"
	"github.com/rkristelijn/glab-tui-install/internal/provision"
	"github.com/rkristelijn/glab-tui-install/internal/toolchain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:         "doctor",
	Annotations: map[string]string{annotationReportsConfig: "true"},
	Short: "Check that this machine can build " + branding.BinaryName(),
	Long: `Run diagnostic checks on the host, the Go toolchain, the package root, an
existing install and the config file. Exits non-zero if any check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := &doctor{w: cmd.OutOrStdout(), settings: config.Current()}

		canonical, resolved := d.checkHost(cmd)
		tc := d.checkToolchain(cmd)
		root := d.checkPackage(cmd, tc)
		if resolved && root != "" {
			d.checkInstall(root, canonical)
		}
		d.checkConfig()

		if d.failures > 0 {
			return fmt.Errorf("doctor found %d problem(s)", d.failures)
		}
		return nil
	},
}

type doctor struct {
	w        io.Writer
	settings config.Settings
	failures int
}

func (d *doctor) ok(format string, a ...interface{})   { d.line("[ OK ]", format, a...) }
func (d *doctor) warn(format string, a ...interface{}) { d.line("[WARN]", format, a...) }
func (d *doctor) miss(format string, a ...interface{}) { d.failures++; d.line("[MISS]", format, a...) }
func (d *doctor) fail(format string, a ...interface{}) { d.failures++; d.line("[FAIL]", format, a...) }

func (d *doctor) line(label, format string, a ...interface{}) {
	fmt.Fprintf(d.w, "  %s %s\n", label, fmt.Sprintf(format, a...))
}

func (d *doctor) checkHost(cmd *cobra.Command) (platform.CanonicalPlatform, bool) {
	fmt.Fprintln(d.w, "Host check:")

	if info, err := platform.DetectHostInfo(cmd.Context()); err != nil {
		d.warn("could not read host details: %v", err)
	} else {
		d.ok("%s (%s %s, kernel %s %s)", info.Hostname, info.Platform, info.PlatformVersion, info.KernelVersion, info.KernelArch)
	}

	host := platform.DetectHost().WithOverrides(d.settings.HostOS, d.settings.HostArch)
	canonical, err := platform.Resolve(host)
	if err != nil {
		d.fail("%s: %v", host, err)
		return platform.CanonicalPlatform{}, false
	}
	d.ok("%s resolves to %s", host, canonical)
	return canonical, true
}

func (d *doctor) checkToolchain(cmd *cobra.Command) *toolchain.Toolchain {
	fmt.Fprintln(d.w, "Toolchain check:")

	tc := toolchain.New(d.settings.Toolchain, branding.ToolchainURL())
	path, err := tc.Path()
	if err != nil {
		d.miss("%s not found", tc.Binary)
		fmt.Fprintf(d.w, "         Install Go from %s\n", branding.ToolchainURL())
		return nil
	}
	v, err := tc.Version(cmd.Context())
	if err != nil {
		d.fail("%s at %s: %v", tc.Binary, path, err)
		return nil
	}
	d.ok("%s %s found at %s", tc.Binary, v, path)
	return tc
}

func (d *doctor) checkPackage(cmd *cobra.Command, tc *toolchain.Toolchain) string {
	fmt.Fprintln(d.w, "Package check:")

	root := d.settings.PackageRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			d.fail("cannot determine working directory: %v", err)
			return ""
		}
		root, err = provision.FindRoot(wd)
		if err != nil {
			d.fail("%v (set --root or %s)", err, branding.EnvVar(config.KeyPackageRoot))
			return ""
		}
	}

	pkg, err := provision.LoadPackage(root)
	if err != nil {
		d.fail("%v", err)
		return ""
	}
	d.ok("%s at %s", pkg.Module, root)

	if pkg.GoVersion == "" || tc == nil {
		return root
	}
	err = tc.CheckMinimum(cmd.Context(), pkg.GoVersion)
	var outdated *toolchain.OutdatedError
	switch {
	case errors.As(err, &outdated):
		d.warn("%v (go build switches toolchains unless GOTOOLCHAIN=local)", err)
	case err != nil:
		d.fail("%v", err)
	default:
		d.ok("toolchain satisfies go %s", pkg.GoVersion)
	}
	return root
}

func (d *doctor) checkInstall(root string, canonical platform.CanonicalPlatform) {
	fmt.Fprintln(d.w, "Install check:")

	target := provision.NewInstallTarget(root, canonical)
	info, err := os.Stat(target.Path)
	if os.IsNotExist(err) {
		d.warn("%s not installed yet (run '%s')", target.Path, branding.CLIName())
		return
	}
	if err != nil {
		d.fail("%v", err)
		return
	}
	if !platform.IsExecutable(canonical.OS, info) {
		d.fail("%s is not executable", target.Path)
		return
	}
	d.ok("%s", target.Path)
}

func (d *doctor) checkConfig() {
	fmt.Fprintln(d.w, "Config check:")

	path := config.FilePath()
	res, err := config.ValidateFile(path)
	if err != nil {
		d.fail("%v", err)
		return
	}
	if !res.Valid {
		d.fail("%s has %d issue(s):", path, len(res.Issues))
		res.Print(d.w)
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		d.ok("no config file, using defaults")
		return
	}
	d.ok("%s is valid", path)
}
