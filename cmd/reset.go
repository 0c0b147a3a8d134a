package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/todo/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all tasks, backing the list up first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive {
			msg := fmt.Sprintf("Delete all %d task(s) in %s?", st.Len(), st.Path())
			var confirm bool
			if err := huh.NewConfirm().Title(msg).Value(&confirm).Run(); err != nil || !confirm {
				return fmt.Errorf("reset cancelled")
			}
		}

		// A failed reset leaves the list alone; report it without failing.
		if err := st.Reset(); err != nil {
			var backupErr *store.BackupError
			if errors.As(err, &backupErr) {
				logger.Error("couldn't back up todo file, no action taken", "backup", backupErr.Path, "err", backupErr.Err)
				return nil
			}
			logger.Error("error while clearing todo file", "err", err)
		}
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the list saved by the last reset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return st.Restore()
	},
}

func init() {
	resetCmd.Flags().BoolP("interactive", "i", false, "ask for confirmation first")
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(restoreCmd)
}
