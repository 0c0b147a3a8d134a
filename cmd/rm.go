package cmd

import "github.com/spf13/cobra"

var rmCmd = &cobra.Command{
	Use:   "rm <position...>",
	Short: "Remove tasks by position",
	Args:  atLeastOne("rm"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return st.Remove(args)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
