package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/relog/internal/changelog"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the recognized commit types in rendering order",
	Long: `List the recognized commit types in rendering order.

Commits whose subject prefix is not one of these types are skipped
during changelog generation. The set is fixed; it is not configurable.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, t := range changelog.Types() {
			fmt.Fprintf(out, "%2d  %-10s %s\n", t.Order(), string(t), t.Title())
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
