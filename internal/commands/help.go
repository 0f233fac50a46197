package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
	"ltask/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ltask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }
func (c *HelpCmd) NeedsRemote() bool { return false }
func (c *HelpCmd) Mutates() bool     { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ltask                                            Interactive menu
  ltask add [common flags] <description...>        Add a task
  ltask list [common flags]                        List all tasks
  ltask done [common flags] <id>                   Mark a task completed
  ltask rm [common flags] <id>                     Remove a task
  ltask export [common flags] [--format <fmt>] [--out <path>]
                                                   Export tasks (json|csv|yaml|pdf)
  ltask sync [common flags]                        Mirror tasks to Google Tasks
  ltask login [common flags]                       Authenticate with Google
  ltask logout [common flags]                      Remove stored credentials
  ltask help
  ltask version

Common flags:
  --config <dir>   Override config directory
  --file <path>    Override task file path
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
