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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"remove"} }
func (c *RmCmd) Synopsis() string  { return "Remove a task" }
func (c *RmCmd) Usage() string     { return "ltask rm [common flags] <id>" }
func (c *RmCmd) NeedsStore() bool  { return true }
func (c *RmCmd) NeedsRemote() bool { return false }
func (c *RmCmd) Mutates() bool     { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := st.Remove(id); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "task %d removed\n", id)
	}
	return exitcode.Success
}
