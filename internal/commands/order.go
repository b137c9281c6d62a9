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
	Register(&OrderCmd{})
}

// OrderCmd implements the order command.
type OrderCmd struct{}

func (c *OrderCmd) Name() string      { return "order" }
func (c *OrderCmd) Aliases() []string { return nil }
func (c *OrderCmd) Synopsis() string  { return "Rearrange all tasks" }
func (c *OrderCmd) Usage() string     { return "todo order <n...>" }
func (c *OrderCmd) NeedsStore() bool  { return true }

func (c *OrderCmd) RegisterFlags(fs *flag.FlagSet) {}

// Run stores the tasks in the order their current numbers are given,
// e.g. "todo order 3 1 2" moves the third task to the top.
func (c *OrderCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	nums, err := ParseTaskNumbers(args)
	if err != nil {
		return userError(errOut, err)
	}

	tasks := svc.Load(ctx)
	if len(nums) != len(tasks) {
		fmt.Fprintf(errOut, "error: expected %d task numbers, got %d\n", len(tasks), len(nums))
		return exitcode.UserError
	}

	next := make([]service.Task, 0, len(nums))
	seen := make(map[int]bool, len(nums))
	for _, num := range nums {
		task, err := taskAt(tasks, num)
		if err != nil {
			return userError(errOut, err)
		}
		if seen[num] {
			fmt.Fprintf(errOut, "error: duplicate task number: %d\n", num)
			return exitcode.UserError
		}
		seen[num] = true
		next = append(next, task)
	}

	if err := svc.Reorder(ctx, next); err != nil {
		return mutationError(errOut, err)
	}
	return printOK(cfg, out)
}
