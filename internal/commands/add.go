package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
	"ltask/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "ltask add [common flags] <description...>" }
func (c *AddCmd) NeedsStore() bool  { return true }
func (c *AddCmd) NeedsRemote() bool { return false }
func (c *AddCmd) Mutates() bool     { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	description := strings.Join(args, " ")

	id, err := st.Add(description)
	if err != nil {
		if errors.Is(err, store.ErrEmptyDescription) {
			fmt.Fprintln(errOut, "error: description required")
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "added task %d\n", id)
	}
	return exitcode.Success
}
