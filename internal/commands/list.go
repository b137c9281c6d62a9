package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list`.
type ListCmd struct {
	open bool
}

// SetOpen sets the --open flag (for testing).
func (c *ListCmd) SetOpen(open bool) {
	c.open = open
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list [--open]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.open, "open", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := svc.Load(ctx)
	p := output.NewPrinter(out, cfg.Settings.DarkMode)

	// Numbers are positions in the full list so they stay valid for
	// done, rm and friends when completed tasks are hidden.
	printed := 0
	for i, task := range tasks {
		if c.open && task.Completed {
			continue
		}
		p.Task(i+1, task)
		printed++
	}

	if printed == 0 && !cfg.Quiet {
		if len(tasks) == 0 {
			fmt.Fprintln(out, "no tasks yet")
		} else {
			fmt.Fprintln(out, "no open tasks")
		}
	}
	return exitcode.Success
}
