package cmd

import "github.com/spf13/cobra"

var addCmd = &cobra.Command{
	Use:   "add <task...>",
	Short: "Add one or more tasks",
	Args:  atLeastOne("add"),
	// Task text may start with a dash.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		added, err := st.Add(args)
		if err != nil {
			return err
		}
		if added == 0 {
			logger.Warn("nothing added, all tasks were blank")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
