package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store holds the in-memory task list and the next ID to assign.
type Store struct {
	tasks  []Task
	nextID uint64
}

// New returns an empty store. The first task gets ID 1.
func New() *Store {
	return &Store{nextID: 1}
}

// Add appends a pending task and returns its ID. Surrounding
// whitespace is trimmed; a blank description is rejected.
func (s *Store) Add(description string) (uint64, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, ErrEmptyDescription
	}

	id := s.nextID
	s.tasks = append(s.tasks, Task{ID: id, Description: description})
	s.nextID++
	return id, nil
}

// Tasks returns a snapshot of the task list in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len reports the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID reports the ID the next Add will assign.
func (s *Store) NextID() uint64 {
	return s.nextID
}

// Complete marks the task with the given ID as completed.
func (s *Store) Complete(id uint64) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = true
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// Remove deletes the task with the given ID. Remaining tasks keep
// their IDs and the removed ID is not handed out again by Add.
func (s *Store) Remove(id uint64) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// Save writes the task file at path, one id,status,description record
// per task, replacing any previous contents.
func (s *Store) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create task file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, t := range s.tasks {
		fmt.Fprintf(w, "%d,%s,%s\n", t.ID, t.StatusWord(), Escape(t.Description))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write task file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}
	return nil
}

// Load reads the task file at path. A missing file yields an empty
// store. Lines that do not split into exactly three fields are
// skipped; a three-field line with a non-numeric ID fails with a
// ParseError. The next ID is one past the highest ID seen.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to open task file: %w", err)
	}
	defer f.Close()

	s := New()
	var maxID uint64
	lineNum := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := splitRecord(line)
		if len(fields) != 3 {
			continue
		}

		id, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Value: fields[0]}
		}

		s.tasks = append(s.tasks, Task{
			ID:          id,
			Description: Unescape(fields[2]),
			Completed:   fields[1] == StatusCompleted,
		})
		if id > maxID {
			maxID = id
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	s.nextID = maxID + 1
	return s, nil
}
