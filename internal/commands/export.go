package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/export"
	"ltask/internal/service"
	"ltask/internal/store"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	path   string
}

// SetFormat sets the output format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

// SetPath sets the output file path (for testing).
func (c *ExportCmd) SetPath(path string) {
	c.path = path
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export tasks as json, csv, yaml, or pdf" }
func (c *ExportCmd) Usage() string {
	return "ltask export [common flags] [--format <fmt>] [--out <path>]"
}
func (c *ExportCmd) NeedsStore() bool  { return true }
func (c *ExportCmd) NeedsRemote() bool { return false }
func (c *ExportCmd) Mutates() bool     { return false }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
	fs.StringVar(&c.path, "out", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	data, err := export.Export(st.Tasks(), c.format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if c.path == "" {
		if _, err := out.Write(data); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.DataError
		}
		return exitcode.Success
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		fmt.Fprintf(errOut, "error: failed to write %s: %v\n", c.path, err)
		return exitcode.DataError
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "exported %d tasks to %s\n", st.Len(), c.path)
	}
	return exitcode.Success
}
