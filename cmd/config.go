package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rogersnm/todo/internal/config"
	"github.com/rogersnm/todo/internal/markdown"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show where tasks and backups are kept",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := [][]string{
			{"path", cfg.Path, config.EnvPath},
			{"backup_path", cfg.BackupPath, config.EnvBackupDir},
			{"no_backup", strconv.FormatBool(cfg.NoBackup), config.EnvNoBackup},
			{"debug", strconv.FormatBool(cfg.Debug), config.EnvDebug},
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, markdown.RenderField("Config file", config.FilePath(os.LookupEnv)))
		fmt.Fprintln(out, markdown.RenderSettingsTable(rows))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Write a setting to the config file",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FilePath(os.LookupEnv)
		file, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := file.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(path, file); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Debug("saved config", "path", path, "key", args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
