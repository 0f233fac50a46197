// Package cli handles command-line dispatch and the interactive menu.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ltask/internal/commands"
	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/logging"
	"ltask/internal/service"
	"ltask/internal/store"
)

// ServiceFactory creates the remote Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and
// remote service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// With no arguments the interactive menu runs, reading choices from in.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	// No args -> interactive menu
	if len(args) == 0 {
		return d.runMenu(in, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

// runMenu loads the store with default configuration and enters the
// interactive loop.
func (d *Dispatcher) runMenu(in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.New("")
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	st, err := store.Load(cfg.DataPath())
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.DataError
	}

	return RunMenu(cfg, st, in, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var filePath string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&filePath, "file", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return flagError(err, errOut)
	}

	// A flag after the first positional would have been left unparsed
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	if filePath != "" {
		cfg.File = filePath
	}
	cfg.Quiet = cfg.Quiet || quiet
	cfg.Debug = debug

	log := logging.New(errOut, cfg.Debug, cfg.LogLevel)

	var st *store.Store
	if cmd.NeedsStore() {
		st, err = store.Load(cfg.DataPath())
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.DataError
		}
		log.WithField("path", cfg.DataPath()).WithField("tasks", st.Len()).Debug("loaded task file")
	}

	var svc service.Service
	if cmd.NeedsRemote() {
		if d.factory != nil {
			// Custom factory provided (e.g., tests with FakeService)
			svc, err = d.factory(ctx, cfg)
			if err != nil {
				if strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "auth") {
					fmt.Fprintf(errOut, "error: auth error: %s\n", err)
					return exitcode.AuthError
				}
				fmt.Fprintf(errOut, "error: backend error: %s\n", err)
				return exitcode.BackendError
			}
		} else {
			// No factory - report missing auth files with friendly errors
			if !cfg.HasOAuthClient() {
				fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
				return exitcode.AuthError
			}
			if !cfg.HasToken() {
				fmt.Fprintln(errOut, "error: not logged in (run: ltask login)")
				return exitcode.AuthError
			}
		}
	}

	code := cmd.Run(ctx, cfg, st, svc, positionalArgs, out, errOut)

	// Persist mutations from non-interactive commands immediately
	if code == exitcode.Success && cmd.Mutates() {
		if err := cfg.EnsureDataDir(); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.DataError
		}
		if err := st.Save(cfg.DataPath()); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.DataError
		}
		log.WithField("path", cfg.DataPath()).WithField("tasks", st.Len()).Debug("saved task file")
	}

	return code
}

// flagError maps flag parse failures to user-facing messages.
func flagError(err error, errOut io.Writer) int {
	errStr := err.Error()

	if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
		parts := strings.Split(errStr, ":")
		if len(parts) > 0 {
			flagPart := strings.TrimSpace(parts[0])
			flagPart = strings.TrimPrefix(flagPart, "flag ")
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
			return exitcode.UserError
		}
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
