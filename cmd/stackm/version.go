package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is filled when building with -ldflags, but *not* when installing
// via "go install".
var Version string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "report the version of this executable.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stackm %s\n", version())
	},
}

func version() string {
	if Version != "" {
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}

	return "(unknown version)"
}
