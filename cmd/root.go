package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/todo/internal/config"
	"github.com/rogersnm/todo/internal/logging"
	"github.com/rogersnm/todo/internal/store"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	cfg     config.Config
	logger  *log.Logger
	st      *store.Store
)

var rootCmd = &cobra.Command{
	Use:     "todo [command] [args...]",
	Short:   "A tiny task list kept in a plain text file",
	Version: version,
	Args:    cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.FromEnvironment()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger = logging.New(cmd.ErrOrStderr(), cfg.Debug)

		// config commands must not create the todo file
		if cmd == configCmd || cmd.Parent() == configCmd {
			return nil
		}

		st, err = store.Open(cfg, logger)
		return err
	},
	// Bare `todo` lists; any unrecognized word prints help.
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return st.List(cmd.OutOrStdout())
		}
		logger.Debug("unknown command, showing help", "command", args[0])
		printHelp(cmd.OutOrStdout())
		return nil
	},
	SilenceUsage: true,
	// `completion` would otherwise shadow the unknown-word help fallback.
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelp(cmd.OutOrStdout())
	})
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if cmd == rootCmd {
			printHelp(cmd.OutOrStdout())
			return nil
		}
		return err
	})

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "One task per line: 1-based position, a space, then the task text (struck through when done)",
				},
			},
			"add": {
				Examples: []mtp.Example{
					{Description: "Add a task", Command: "todo add \"buy carrots\""},
					{Description: "Add several tasks at once", Command: "todo add \"buy carrots\" \"call mom\""},
				},
			},
			"rm": {
				Examples: []mtp.Example{
					{Description: "Remove the fourth task", Command: "todo rm 4"},
				},
			},
			"done": {
				Examples: []mtp.Example{
					{Description: "Toggle the second and third tasks", Command: "todo done 2 3"},
				},
			},
			"raw": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Bare task text, one per line, without markers or numbers",
				},
				Examples: []mtp.Example{
					{Description: "Print finished tasks", Command: "todo raw done"},
					{Description: "Print unfinished tasks", Command: "todo raw todo"},
				},
			},
			"edit": {
				Examples: []mtp.Example{
					{Description: "Replace the text of the first task", Command: "todo edit 1 banana"},
				},
			},
			"sort": {
				Examples: []mtp.Example{
					{Description: "Move finished tasks to the bottom", Command: "todo sort"},
					{Description: "Sort alphabetically, then by completion", Command: "todo sort --alphabetical"},
				},
			},
			"reset": {
				Examples: []mtp.Example{
					{Description: "Delete all tasks, keeping a backup", Command: "todo reset"},
					{Description: "Ask before deleting", Command: "todo reset -i"},
				},
			},
			"restore": {
				Examples: []mtp.Example{
					{Description: "Bring back the list saved by the last reset", Command: "todo restore"},
				},
			},
			"config": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of resolved settings and the environment variables that override them",
				},
			},
			"config set": {
				Examples: []mtp.Example{
					{Description: "Keep tasks in a synced folder", Command: "todo config set path ~/Dropbox/todo.txt"},
					{Description: "Stop backing up on reset", Command: "todo config set no_backup true"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}
