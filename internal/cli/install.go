package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rkristelijn/glab-tui-install/internal/branding"
	"github.com/rkristelijn/glab-tui-install/internal/config"
	"github.com/rkristelijn/glab-tui-install/internal/platform"
	"github.com/rkristelijn/glab-tui-install/internal/provision"
	"github.com/rkristelijn/glab-tui-install/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	installLDFlags string
	installMode    string
	installDryRun  bool
	installJSON    bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Build and install " + branding.BinaryName() + " for this machine",
	Long: `Resolve the host platform, build ` + branding.BinaryName() + ` with the Go toolchain
(GOOS/GOARCH set for the host, cgo disabled, stripped binary) and install it
to <package-root>/bin with executable permissions.

  ` + branding.CLIName() + ` install                  # build for this machine
  ` + branding.CLIName() + ` install --dry-run        # show what would run
  ` + branding.CLIName() + ` install --host-os win32  # build the windows binary`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	addInstallFlags(installCmd)
	rootCmd.AddCommand(installCmd)
}

// addInstallFlags registers the install flags on cmd. The root command and
// "install" share them because the root command installs by default.
func addInstallFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&installLDFlags, "ldflags", "", "Linker flags passed to go build (default \"-s -w\")")
	cmd.Flags().StringVar(&installMode, "mode", "", "Install mode: source or release (default \"source\")")
	cmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Print the install plan without building")
	cmd.Flags().BoolVar(&installJSON, "json", false, "Print the plan as JSON (requires --dry-run)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	if installJSON && !installDryRun {
		return errJSONWithoutDryRun
	}
	settings := config.Current()
	if err := validateConfigFile(); err != nil {
		return err
	}
	if cmd.Flags().Changed("ldflags") {
		settings.LDFlags = installLDFlags
	}
	if cmd.Flags().Changed("mode") {
		settings.Mode = installMode
	}

	p, err := newProvisioner(cmd, settings)
	if err != nil {
		return err
	}

	if installDryRun {
		plan, err := p.Plan()
		if err != nil {
			return err
		}
		return printPlan(cmd, plan)
	}

	_, err = p.Install(cmd.Context())
	return err
}

var errJSONWithoutDryRun = errors.New("--json requires --dry-run")

func newProvisioner(cmd *cobra.Command, s config.Settings) (*provision.Provisioner, error) {
	mode, err := provision.ParseMode(s.Mode)
	if err != nil {
		return nil, err
	}

	tc := toolchain.New(s.Toolchain, branding.ToolchainURL())
	tc.Stdout = cmd.OutOrStdout()
	tc.Stderr = cmd.ErrOrStderr()

	return provision.New(provision.Options{
		Root:      s.PackageRoot,
		Host:      platform.DetectHost().WithOverrides(s.HostOS, s.HostArch),
		Toolchain: tc,
		Mode:      mode,
		LDFlags:   s.LDFlags,
		Reporter:  provision.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		Logger:    logger,
	}), nil
}

// validateConfigFile refuses to run with a config file that does not match
// the schema.
func validateConfigFile() error {
	path := config.FilePath()
	res, err := config.ValidateFile(path)
	if err != nil {
		return err
	}
	return res.Err(path)
}

func printPlan(cmd *cobra.Command, plan *provision.Plan) error {
	out := cmd.OutOrStdout()
	if installJSON {
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling plan: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Host:      %s\n", plan.Host)
	fmt.Fprintf(out, "Platform:  %s\n", plan.Platform)
	fmt.Fprintf(out, "Root:      %s\n", plan.Root)
	fmt.Fprintf(out, "Target:    %s\n", plan.Target.Path)
	fmt.Fprintf(out, "Env:       GOOS=%s GOARCH=%s CGO_ENABLED=%s\n",
		plan.Overrides[toolchain.EnvGOOS], plan.Overrides[toolchain.EnvGOARCH], plan.Overrides[toolchain.EnvCGOEnabled])
	fmt.Fprintf(out, "Command:   %s\n", quoteArgs(plan.Args))
	if !plan.Platform.IsWindows() {
		fmt.Fprintf(out, "Finalize:  chmod %o %s\n", platform.ExecutablePerm, plan.Target.Path)
	}
	return nil
}

func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t\"") {
			a = fmt.Sprintf("%q", a)
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
