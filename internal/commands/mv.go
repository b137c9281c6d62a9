package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/taskstore"
)

func init() {
	Register(&MvCmd{})
}

// MvCmd implements the mv command.
type MvCmd struct{}

func (c *MvCmd) Name() string      { return "mv" }
func (c *MvCmd) Aliases() []string { return []string{"move"} }
func (c *MvCmd) Synopsis() string  { return "Move a task to another position" }
func (c *MvCmd) Usage() string     { return "todo mv <from> <to>" }
func (c *MvCmd) NeedsStore() bool  { return true }

func (c *MvCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MvCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: expected <from> <to>")
		return exitcode.UserError
	}
	nums, err := ParseTaskNumbers(args)
	if err != nil {
		return userError(errOut, err)
	}

	tasks := svc.Load(ctx)
	for _, num := range nums {
		if _, err := taskAt(tasks, num); err != nil {
			return userError(errOut, err)
		}
	}

	if nums[0] != nums[1] {
		if err := svc.Reorder(ctx, taskstore.Move(tasks, nums[0]-1, nums[1]-1)); err != nil {
			return mutationError(errOut, err)
		}
	}
	return printOK(cfg, out)
}
