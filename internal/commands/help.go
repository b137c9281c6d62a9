package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                               List all tasks
  todo list [common flags] [--open]                  List tasks (alias: ls)
  todo add [common flags] <title...>                 Add a task (alias: create)
  todo toggle [common flags] <n...>                  Flip tasks between open and completed
  todo done [common flags] <n...>                    Mark tasks completed
  todo edit [common flags] <n> <title...>            Rename a task
  todo rm [common flags] [--yes] <n>                 Delete a task
  todo clear [common flags] [--yes]                  Delete all tasks
  todo mv [common flags] <from> <to>                 Move a task to another position (alias: move)
  todo order [common flags] <n...>                   Rearrange all tasks
  todo calendar [common flags]                       Show the calendar view (alias: cal)
  todo settings [common flags] [set <name> <on|off>] Show or change settings
  todo ui [common flags]                             Start the terminal UI (alias: tui)
  todo help                                          Show this help
  todo version                                       Print version

Common flags:
  --config <dir>    Override config directory
  --backend <name>  Storage backend: file, memory, sqlite, sqlite3, mysql
  --dsn <dsn>       Data source for the sqlite, sqlite3 and mysql backends
  --quiet           Suppress informational output
  --debug           Print debug logs to stderr
`
