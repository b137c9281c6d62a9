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
	Register(&SettingsCmd{})
}

// SettingsCmd implements the settings command.
type SettingsCmd struct{}

func (c *SettingsCmd) Name() string      { return "settings" }
func (c *SettingsCmd) Aliases() []string { return nil }
func (c *SettingsCmd) Synopsis() string  { return "Show or change settings" }
func (c *SettingsCmd) Usage() string     { return "todo settings [set <name> <on|off>]" }
func (c *SettingsCmd) NeedsStore() bool  { return false }

func (c *SettingsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SettingsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		output.NewPrinter(out, cfg.Settings.DarkMode).Settings(cfg.Settings)
		return exitcode.Success
	}

	if args[0] != "set" {
		fmt.Fprintf(errOut, "error: unknown settings action: %s\n", args[0])
		return exitcode.UserError
	}
	if len(args) != 3 {
		fmt.Fprintln(errOut, "error: usage: todo settings set <name> <on|off>")
		return exitcode.UserError
	}

	on, err := parseOnOff(args[2])
	if err != nil {
		return userError(errOut, err)
	}
	if err := cfg.Settings.Set(args[1], on); err != nil {
		return userError(errOut, err)
	}

	if err := cfg.SaveSettings(); err != nil {
		fmt.Fprintf(errOut, "error: config error: %v\n", err)
		return exitcode.ConfigError
	}
	return printOK(cfg, out)
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value: %s (want on or off)", s)
	}
}
