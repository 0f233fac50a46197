package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = errors.New("task ID required")

// ParseTaskID parses the single task id argument for done/rm.
func ParseTaskID(args []string) (uint64, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("expected one task ID, got %d arguments", len(args))
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %s", args[0])
	}
	return id, nil
}
