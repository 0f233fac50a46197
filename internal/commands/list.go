package commands

import (
	"context"
	"flag"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/output"
	"ltask/internal/service"
	"ltask/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List all tasks" }
func (c *ListCmd) Usage() string     { return "ltask list [common flags]" }
func (c *ListCmd) NeedsStore() bool  { return true }
func (c *ListCmd) NeedsRemote() bool { return false }
func (c *ListCmd) Mutates() bool     { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	output.FormatTasks(out, st.Tasks(), cfg.Quiet)
	return exitcode.Success
}
