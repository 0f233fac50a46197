package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"ltask/internal/commands"
	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
	"ltask/internal/store"
	"ltask/internal/testutil"
)

// runCommand is a helper to run a command against an in-memory store.
func runCommand(t *testing.T, cmd commands.Command, st *store.Store, svc service.Service, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, st, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ltask 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
	if !strings.Contains(stdout, "Common flags:") {
		t.Error("help output should list common flags")
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	st := store.New()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, []string{"Buy", "groceries"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "added task 1\n" {
		t.Errorf("expected 'added task 1\\n', got %q", stdout)
	}

	tasks := st.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Description != "Buy groceries" {
		t.Errorf("expected description 'Buy groceries', got %q", tasks[0].Description)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	st := store.New()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, []string{"Buy", "milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestAddCommand_EmptyDescription(t *testing.T) {
	st := store.New()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, []string{"  "}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: description required\n" {
		t.Errorf("expected description required error, got %q", stderr)
	}
	if st.Len() != 0 {
		t.Errorf("store should be unchanged, has %d tasks", st.Len())
	}
}

func TestAddCommand_NoArgs(t *testing.T) {
	st := store.New()

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: description required\n" {
		t.Errorf("expected description required error, got %q", stderr)
	}
}

// Tests for list command
func TestListCommand(t *testing.T) {
	st := store.New()
	st.Add("Buy milk")
	st.Add("Walk dog")
	st.Complete(2)

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "[ ]    1  Buy milk\n[x]    2  Walk dog\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, store.New(), nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected 'no tasks found\\n', got %q", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, store.New(), nil, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

// Tests for done command
func TestDoneCommand_Success(t *testing.T) {
	st := store.New()
	st.Add("Buy milk")

	cmd := &commands.DoneCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "task 1 completed\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if !st.Tasks()[0].Completed {
		t.Error("task should be completed")
	}
}

func TestDoneCommand_NotFound(t *testing.T) {
	st := store.New()

	cmd := &commands.DoneCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, []string{"99"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task with ID 99 not found\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDoneCommand_InvalidID(t *testing.T) {
	st := store.New()

	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, []string{"abc"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task ID: abc\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDoneCommand_NoArgs(t *testing.T) {
	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, store.New(), nil, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task ID required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for rm command
func TestRmCommand_Success(t *testing.T) {
	st := store.New()
	st.Add("Buy milk")
	st.Add("Walk dog")

	cmd := &commands.RmCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "task 1 removed\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}

	tasks := st.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("unexpected remaining tasks: %+v", tasks)
	}
}

func TestRmCommand_NotFound(t *testing.T) {
	cmd := &commands.RmCmd{}
	_, stderr, code := runCommand(t, cmd, store.New(), nil, []string{"7"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task with ID 7 not found\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for sync command
func TestSyncCommand_CreatesMissingPending(t *testing.T) {
	st := store.New()
	st.Add("Buy milk")
	st.Add("Walk dog")

	svc := testutil.NewFakeService()
	svc.AddOpenTask("Buy milk")

	cmd := &commands.SyncCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "synced: 1 created, 0 completed\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}

	remote := svc.Tasks()
	if len(remote) != 2 {
		t.Fatalf("expected 2 remote tasks, got %d", len(remote))
	}
	if remote[1].Title != "Walk dog" {
		t.Errorf("expected 'Walk dog' created remotely, got %q", remote[1].Title)
	}
}

func TestSyncCommand_CompletesRemoteMatch(t *testing.T) {
	st := store.New()
	st.Add("Buy milk")
	st.Complete(1)

	svc := testutil.NewFakeService()
	svc.AddOpenTask("Buy milk")

	cmd := &commands.SyncCmd{}
	stdout, _, code := runCommand(t, cmd, st, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "synced: 0 created, 1 completed\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if got := svc.Tasks()[0].Status; got != "completed" {
		t.Errorf("expected remote task completed, got %q", got)
	}
}

func TestSyncCommand_CompletedLocalWithoutRemoteMatchIsIgnored(t *testing.T) {
	st := store.New()
	st.Add("Buy milk")
	st.Complete(1)

	svc := testutil.NewFakeService()

	cmd := &commands.SyncCmd{}
	stdout, _, code := runCommand(t, cmd, st, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "synced: 0 created, 0 completed\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if len(svc.Tasks()) != 0 {
		t.Errorf("nothing should be created remotely, got %+v", svc.Tasks())
	}
}

func TestSyncCommand_BackendError(t *testing.T) {
	st := store.New()
	st.Add("Buy milk")

	svc := testutil.NewFakeService()
	svc.ListOpenTasksErr = errTest

	cmd := &commands.SyncCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "backend error") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

var errTest = &testError{}

type testError struct{}

func (e *testError) Error() string { return "boom" }

// Tests for logout command
func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	cmd := &commands.LogoutCmd{}
	stdout, stderr, code := runCommand(t, cmd, nil, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "not logged in\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}
