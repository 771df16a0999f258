// Package picker implements the interactive project chooser: a numbered
// listing of candidate project directories and a prompt for a 1-based
// selection.
package picker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// ErrNoSelection is returned when there is nothing to choose from or
	// the user submits an empty choice.
	ErrNoSelection = errors.New("no project selected")
	// ErrInvalidSelection is returned for a non-numeric or out-of-range
	// choice.
	ErrInvalidSelection = errors.New("invalid project selection")
)

// ListProjects returns the immediate subdirectories of base, sorted by
// name. Hidden directories are not offered.
func ListProjects(base string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects under %s: %w", base, err)
	}

	var projects []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		projects = append(projects, entry.Name())
	}
	sort.Strings(projects)
	return projects, nil
}

// Choose prints a numbered listing of the projects under base to out and
// reads a 1-based selection from in. It returns the absolute-ish path of
// the chosen project (base joined with the directory name).
func Choose(base string, in io.Reader, out io.Writer) (string, error) {
	projects, err := ListProjects(base)
	if err != nil {
		return "", err
	}
	if len(projects) == 0 {
		return "", fmt.Errorf("%w: no project directories under %s", ErrNoSelection, base)
	}

	heading := color.New(color.FgCyan, color.Bold)
	_, _ = heading.Fprintln(out, "Select a project to bundle:")
	for i, name := range projects {
		_, _ = fmt.Fprintf(out, "  %s %s\n", color.GreenString("%2d)", i+1), name)
	}
	_, _ = fmt.Fprint(out, "Project number: ")

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return "", fmt.Errorf("%w: no input", ErrNoSelection)
	}
	response = strings.TrimSpace(response)
	if response == "" {
		return "", ErrNoSelection
	}

	number, err := strconv.Atoi(response)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, response)
	}
	if number < 1 || number > len(projects) {
		return "", fmt.Errorf("%w: %d is out of range 1..%d", ErrInvalidSelection, number, len(projects))
	}

	return filepath.Join(base, projects[number-1]), nil
}

// StdinIsTerminal reports whether standard input is attached to a
// terminal. The interactive chooser refuses to run without one.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
