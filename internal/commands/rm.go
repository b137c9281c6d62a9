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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	yes bool
}

// SetYes sets the --yes flag (for testing).
func (c *RmCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return nil }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "todo rm [--yes] <n>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		return userError(errOut, ErrTaskNumberRequired)
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}
	num, err := ParseTaskNumber(args[0])
	if err != nil {
		return userError(errOut, err)
	}

	task, err := taskAt(svc.Load(ctx), num)
	if err != nil {
		return userError(errOut, err)
	}

	prompt := fmt.Sprintf("Delete task %q? [y/N]: ", output.NormalizeTitle(task.Title))
	if !c.yes && !confirm(in, out, prompt) {
		fmt.Fprintln(out, "cancelled")
		return exitcode.Success
	}

	if _, err := svc.Delete(ctx, task.ID); err != nil {
		return mutationError(errOut, err)
	}
	return printOK(cfg, out)
}
