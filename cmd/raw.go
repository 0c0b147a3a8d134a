package cmd

import (
	"github.com/rogersnm/todo/internal/store"
	"github.com/spf13/cobra"
)

var rawCmd = &cobra.Command{
	Use:       "raw <done|todo>",
	Short:     "Print finished or unfinished tasks as plain text, for scripts",
	Args:      rawArgs,
	ValidArgs: []string{string(store.RawDone), string(store.RawTodo)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := store.ParseRawMode(args[0])
		if err != nil {
			return err
		}
		return st.Raw(cmd.OutOrStdout(), mode)
	},
}

func init() {
	rootCmd.AddCommand(rawCmd)
}
