package cli

import (
	"fmt"

	"github.com/rkristelijn/glab-tui-install/internal/branding"
	"github.com/rkristelijn/glab-tui-install/internal/config"
	"github.com/rkristelijn/glab-tui-install/internal/provision"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
	logger  provision.Logger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.CLIName() + ` resolves this machine's platform, builds ` + branding.BinaryName() + ` with the
Go toolchain and installs it to <package-root>/bin. Running it without a
subcommand performs the install.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		if err := config.Load(); err != nil {
			if cmd.Annotations[annotationReportsConfig] == "" {
				return err
			}
			logger.Debug("continuing with unreadable config", "error", err)
		}
		return nil
	},
	RunE: runInstall,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("root", "", "Package root containing go.mod (default: nearest go.mod above the working directory)")
	pf.String("host-os", "", "Override the detected host OS (darwin, linux, win32)")
	pf.String("host-arch", "", "Override the detected host architecture (x64, arm64)")
	pf.String("toolchain", "", "Go toolchain binary (default \"go\")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")

	addInstallFlags(rootCmd)
}

// annotationReportsConfig marks commands that diagnose the config file
// themselves and so run even when it cannot be read.
const annotationReportsConfig = "reports-config"

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"root":      config.KeyPackageRoot,
	"host-os":   config.KeyHostOS,
	"host-arch": config.KeyHostArch,
	"toolchain": config.KeyToolchain,
}

// bindFlags lets persistent flags take precedence over environment and
// config file values.
func bindFlags(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags. It is
// the single error boundary: failures are printed here and the caller only
// has to exit with status 1.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}
	if cmd == rootCmd || cmd == installCmd {
		provision.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr()).Failure(err)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	if logger != nil {
		logger.Debug("command failed", "command", cmd.Name(), "error", err)
	}
	return err
}
