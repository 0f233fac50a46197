// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"ltask/internal/config"
	"ltask/internal/service"
	"ltask/internal/store"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the task store.
	// The dispatcher loads the task file before running such commands.
	NeedsStore() bool

	// NeedsRemote returns true if the command requires the remote
	// backend. Commands like help, version, login, logout return false.
	NeedsRemote() bool

	// Mutates returns true if the command modifies the store. The
	// dispatcher saves the task file after a successful run.
	Mutates() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths).
	// st is nil if NeedsStore() returns false.
	// svc is nil if NeedsRemote() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, st *store.Store, svc service.Service, args []string, out, errOut io.Writer) int
}
