package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ordhook/ordhook/pkg/config"
)

// Set at build time through -ldflags "-X".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var shortVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if shortVersion {
			fmt.Fprintln(out, Version)

			return
		}

		fmt.Fprintf(out, "ordhook %s (%s, built %s)\n", Version, GitCommit, BuildTime)
		fmt.Fprintf(out, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "profiles: %s\n", strings.Join(config.Profiles(), ", "))
	},
}

func init() {
	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "print the version number only")
}
