package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/output"
	"ltask/internal/store"
)

const menuText = `
Todo List Manager
1. Add Task
2. List Tasks
3. Complete Task
4. Remove Task
5. Save and Exit
`

// RunMenu drives the interactive loop until the user selects "Save and
// Exit". Validation and not-found errors are printed and the loop
// continues; a save failure terminates with a data error. The store is
// written once, at exit.
func RunMenu(cfg *config.Config, st *store.Store, in io.Reader, out, errOut io.Writer) int {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, menuText)
		fmt.Fprint(out, "Enter your choice: ")

		line, ok := readLine(scanner)
		if !ok {
			// Input ended without "Save and Exit"; nothing is persisted.
			fmt.Fprintln(out)
			return exitcode.Success
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			menuAdd(st, scanner, out)
		case 2:
			output.FormatTasks(out, st.Tasks(), false)
		case 3:
			menuComplete(st, scanner, out)
		case 4:
			menuRemove(st, scanner, out)
		case 5:
			if err := cfg.EnsureDataDir(); err != nil {
				fmt.Fprintf(errOut, "error: %v\n", err)
				return exitcode.DataError
			}
			if err := st.Save(cfg.DataPath()); err != nil {
				fmt.Fprintf(errOut, "error: %v\n", err)
				return exitcode.DataError
			}
			fmt.Fprintln(out, "Tasks saved. Goodbye!")
			return exitcode.Success
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}

func menuAdd(st *store.Store, scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprint(out, "Enter task description: ")
	line, ok := readLine(scanner)
	if !ok {
		return
	}

	id, err := st.Add(line)
	if err != nil {
		if errors.Is(err, store.ErrEmptyDescription) {
			fmt.Fprintln(out, "Error: task description cannot be empty")
			return
		}
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Task added with ID: %d\n", id)
}

func menuComplete(st *store.Store, scanner *bufio.Scanner, out io.Writer) {
	id, ok := promptID(scanner, out, "Enter task ID to complete: ")
	if !ok {
		return
	}
	if err := st.Complete(id); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Task %d completed\n", id)
}

func menuRemove(st *store.Store, scanner *bufio.Scanner, out io.Writer) {
	id, ok := promptID(scanner, out, "Enter task ID to remove: ")
	if !ok {
		return
	}
	if err := st.Remove(id); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Task %d removed\n", id)
}

// promptID prompts for a task id; a non-numeric answer is reported and
// the caller returns to the menu.
func promptID(scanner *bufio.Scanner, out io.Writer, prompt string) (uint64, bool) {
	fmt.Fprint(out, prompt)
	line, ok := readLine(scanner)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
	if err != nil {
		fmt.Fprintln(out, "Invalid task ID")
		return 0, false
	}
	return id, true
}

// readLine reads the next input line; ok is false at end of input.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}
