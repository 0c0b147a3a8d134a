package cmd

import "github.com/spf13/cobra"

var editCmd = &cobra.Command{
	Use:                "edit <position> <task>",
	Short:              "Replace the text of a task",
	Args:               exactlyTwo("edit"),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return st.Edit(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
