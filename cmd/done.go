package cmd

import "github.com/spf13/cobra"

var doneCmd = &cobra.Command{
	Use:   "done <position...>",
	Short: "Toggle tasks between done and not done",
	Args:  atLeastOne("done"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return st.Done(args)
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
