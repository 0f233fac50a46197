// Package service defines the backend-agnostic interface for the remote
// task mirror used by the sync command.
package service

import "context"

// Task represents a task item on the remote backend.
type Task struct {
	ID     string
	Title  string
	Status string // "needsAction" or "completed"
}

// TaskList represents a remote task list.
type TaskList struct {
	ID    string
	Title string
}

// Service defines the operations sync needs from a remote backend.
// Commands never import the Google SDK directly.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListOpenTasks returns all open tasks for a list in API order.
	ListOpenTasks(ctx context.Context, listID string) ([]Task, error)

	// CreateTask creates a new task in the specified list.
	CreateTask(ctx context.Context, listID, title string) error

	// CompleteTask marks a task as completed.
	CompleteTask(ctx context.Context, listID, taskID string) error
}
