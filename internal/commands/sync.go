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
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command: it mirrors the local store into
// the user's default remote list. Local pending tasks missing remotely
// are created; remote open tasks whose title matches a locally completed
// task are completed. Nothing is deleted remotely.
type SyncCmd struct{}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return []string{"push"} }
func (c *SyncCmd) Synopsis() string  { return "Mirror tasks to Google Tasks" }
func (c *SyncCmd) Usage() string     { return "ltask sync [common flags]" }
func (c *SyncCmd) NeedsStore() bool  { return true }
func (c *SyncCmd) NeedsRemote() bool { return true }
func (c *SyncCmd) Mutates() bool     { return false }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	list, err := svc.DefaultList(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	remote, err := svc.ListOpenTasks(ctx, list.ID)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	// Remote matching is by exact title.
	openByTitle := make(map[string]service.Task, len(remote))
	for _, t := range remote {
		if _, ok := openByTitle[t.Title]; !ok {
			openByTitle[t.Title] = t
		}
	}

	var created, completed int
	for _, t := range st.Tasks() {
		match, exists := openByTitle[t.Description]
		switch {
		case t.Completed && exists:
			if err := svc.CompleteTask(ctx, list.ID, match.ID); err != nil {
				fmt.Fprintf(errOut, "error: backend error: %v\n", err)
				return exitcode.BackendError
			}
			completed++
		case !t.Completed && !exists:
			if err := svc.CreateTask(ctx, list.ID, t.Description); err != nil {
				fmt.Fprintf(errOut, "error: backend error: %v\n", err)
				return exitcode.BackendError
			}
			created++
		}
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "synced: %d created, %d completed\n", created, completed)
	}
	return exitcode.Success
}
