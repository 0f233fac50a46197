// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task id).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// BackendError indicates a remote backend/API/network error.
	BackendError = 3

	// DataError indicates a task file load or save failure.
	DataError = 4
)
