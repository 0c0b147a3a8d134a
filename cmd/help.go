package cmd

import (
	"fmt"
	"io"

	"github.com/rogersnm/todo/internal/markdown"
)

const helpText = "# todo\n\n" +
	"A tiny task organizer. Tasks live one per line in a plain text file.\n\n" +
	"Usage: `todo [COMMAND] [ARGUMENTS]`\n\n" +
	"## Commands\n\n" +
	"- `add [TASK...]` adds new tasks, e.g. `todo add \"buy carrots\"`\n" +
	"- `edit [POSITION] [TASK]` replaces a task's text, e.g. `todo edit 1 banana`\n" +
	"- `list` lists all tasks (also the default with no command)\n" +
	"- `done [POSITION...]` toggles tasks done, e.g. `todo done 2 3`\n" +
	"- `rm [POSITION...]` removes tasks, e.g. `todo rm 4`\n" +
	"- `reset [-i]` deletes all tasks, keeping a backup\n" +
	"- `restore` restores the backup made by the last reset\n" +
	"- `sort [--alphabetical]` puts unfinished tasks first, optionally sorting alphabetically first\n" +
	"- `raw [todo|done]` prints bare unfinished or finished tasks, useful for scripting\n" +
	"- `config` shows the resolved file locations\n" +
	"- `config set <key> <value>` writes `path`, `backup_path`, `no_backup` or `debug` to the config file\n\n" +
	"## Environment\n\n" +
	"- `TODO_PATH` task file (default `~/.todo`, or `~/TODO` if it exists)\n" +
	"- `TODO_BAK_DIR` backup file (default `todo.bak` in the temp directory)\n" +
	"- `TODO_NOBACKUP` when set, reset skips the backup\n" +
	"- `TODO_CONFIG` config file (default `todo/config.yaml` in the user config directory)\n" +
	"- `TODO_DEBUG` when set, logs debug output to stderr\n"

func printHelp(w io.Writer) {
	fmt.Fprint(w, markdown.RenderOrRaw(helpText))
}
