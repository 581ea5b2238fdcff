package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/relog/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print relog version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "relog %s\n", version.Version)
		fmt.Fprintf(out, "commit: %s\n", version.Commit)
		fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
