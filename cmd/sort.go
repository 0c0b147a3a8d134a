package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort [--alphabetical]",
	Short: "Move finished tasks below unfinished ones",
	Args:  sortArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		alphabetical, _ := cmd.Flags().GetBool("alphabetical")
		return st.Sort(alphabetical)
	},
}

func init() {
	sortCmd.Flags().Bool("alphabetical", false, "sort alphabetically before grouping by completion")
	sortCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%s: %w", sortUsage, err)
	})
	rootCmd.AddCommand(sortCmd)
}
