package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&CalendarCmd{})
}

// CalendarCmd implements the calendar command.
type CalendarCmd struct{}

func (c *CalendarCmd) Name() string      { return "calendar" }
func (c *CalendarCmd) Aliases() []string { return []string{"cal"} }
func (c *CalendarCmd) Synopsis() string  { return "Show the calendar" }
func (c *CalendarCmd) Usage() string     { return "todo calendar" }
func (c *CalendarCmd) NeedsStore() bool  { return false }

func (c *CalendarCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CalendarCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	output.NewPrinter(out, cfg.Settings.DarkMode).Calendar()
	return exitcode.Success
}
