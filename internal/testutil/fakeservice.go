// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strconv"
	"sync"

	"ltask/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	list   service.TaskList
	tasks  []service.Task
	nextID int

	// Error injection for testing
	DefaultListErr   error
	ListOpenTasksErr error
	CreateTaskErr    error
	CompleteTaskErr  error
}

// NewFakeService creates a new FakeService with an empty default list.
func NewFakeService() *FakeService {
	return &FakeService{
		list:   service.TaskList{ID: DefaultListID, Title: "My Tasks"},
		nextID: 1,
	}
}

// AddOpenTask seeds an open task into the default list.
func (f *FakeService) AddOpenTask(title string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := "remote-" + strconv.Itoa(f.nextID)
	f.nextID++
	f.tasks = append(f.tasks, service.Task{ID: id, Title: title, Status: "needsAction"})
	return id
}

// Tasks returns a snapshot of all remote tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.list, nil
}

// ListOpenTasks implements service.Service.
func (f *FakeService) ListOpenTasks(ctx context.Context, listID string) ([]service.Task, error) {
	if f.ListOpenTasksErr != nil {
		return nil, f.ListOpenTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var open []service.Task
	for _, t := range f.tasks {
		if t.Status == "needsAction" {
			open = append(open, t)
		}
	}
	return open, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID, title string) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.AddOpenTask(title)
	return nil
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, listID, taskID string) error {
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == taskID {
			f.tasks[i].Status = "completed"
			return nil
		}
	}
	return &notFoundError{id: taskID}
}

type notFoundError struct{ id string }

func (e *notFoundError) Error() string { return "remote task not found: " + e.id }
