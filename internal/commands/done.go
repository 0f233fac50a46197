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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "ltask done [common flags] <id>" }
func (c *DoneCmd) NeedsStore() bool  { return true }
func (c *DoneCmd) NeedsRemote() bool { return false }
func (c *DoneCmd) Mutates() bool     { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Complete only fails with NotFoundError, a user error.
	if err := st.Complete(id); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "task %d completed\n", id)
	}
	return exitcode.Success
}
