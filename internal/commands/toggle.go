package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return nil }
func (c *ToggleCmd) Synopsis() string  { return "Flip tasks between open and completed" }
func (c *ToggleCmd) Usage() string     { return "todo toggle <n...>" }
func (c *ToggleCmd) NeedsStore() bool  { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	return eachTask(ctx, cfg, svc, args, out, errOut, svc.Toggle)
}

// eachTask applies fn to every numbered task. All numbers are validated
// first; the first failing write stops the rest.
func eachTask(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer,
	fn func(ctx context.Context, id string) (service.Task, bool, error)) int {
	nums, err := ParseTaskNumbers(args)
	if err != nil {
		return userError(errOut, err)
	}

	targets, err := tasksAt(svc.Load(ctx), nums)
	if err != nil {
		return userError(errOut, err)
	}

	for _, task := range targets {
		if _, _, err := fn(ctx, task.ID); err != nil {
			return mutationError(errOut, err)
		}
	}
	return printOK(cfg, out)
}
