package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rkristelijn/glab-tui-install/internal/config"
	"github.com/rkristelijn/glab-tui-install/internal/platform"
	"github.com/rkristelijn/glab-tui-install/internal/provision"
	"github.com/spf13/cobra"
)

var platformJSON bool

func init() {
	platformCmd.Flags().BoolVar(&platformJSON, "json", false, "Print the resolution as JSON")
	rootCmd.AddCommand(platformCmd)
}

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show how this host resolves to a build target",
	Long: `Print the raw host identifiers, the GOOS/GOARCH pair they resolve to and the
binary file name that would be installed. Exits non-zero on an unsupported host.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := config.Current()
		host := platform.DetectHost().WithOverrides(s.HostOS, s.HostArch)

		canonical, err := platform.Resolve(host)
		if err != nil {
			return err
		}
		fileName := provision.BinaryFileName(canonical.OS)

		out := cmd.OutOrStdout()
		if platformJSON {
			info := struct {
				Host     platform.HostDescriptor    `json:"host"`
				Platform platform.CanonicalPlatform `json:"platform"`
				Binary   string                     `json:"binary"`
			}{host, canonical, fileName}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling platform info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "host:     %s\n", host)
		fmt.Fprintf(out, "platform: %s\n", canonical)
		fmt.Fprintf(out, "binary:   %s/%s\n", provision.BinDir, fileName)
		return nil
	},
}
