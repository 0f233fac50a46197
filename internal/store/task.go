package store

// Status words as they appear in the task file.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task is a single todo item.
type Task struct {
	ID          uint64
	Description string
	Completed   bool
}

// StatusWord returns the status field written to the task file.
func (t Task) StatusWord() string {
	if t.Completed {
		return StatusCompleted
	}
	return StatusPending
}
