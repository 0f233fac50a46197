// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"ltask/internal/store"
)

// Marker returns the two-state status marker for a task.
func Marker(t store.Task) string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

// FormatTask formats one task line.
// Format: "{MARKER} {ID:>4}  {DESCRIPTION}\n"
func FormatTask(w io.Writer, t store.Task) {
	fmt.Fprintf(w, "%s %4d  %s\n", Marker(t), t.ID, normalizeDescription(t.Description))
}

// FormatTasks prints every task in order, or "no tasks found" when the
// slice is empty (suppressed in quiet mode).
func FormatTasks(w io.Writer, tasks []store.Task, quiet bool) {
	if len(tasks) == 0 {
		if !quiet {
			fmt.Fprintln(w, "no tasks found")
		}
		return
	}
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// normalizeDescription normalizes a description for display.
// Newlines are replaced with spaces so a record stays one line.
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	return strings.ReplaceAll(desc, "\n", " ")
}
