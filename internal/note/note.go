// Package note provides the editors the CLI inserts links into: stdout, or a
// Markdown note on disk.
package note

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jiralink/jiralink/internal/platform"
)

// ErrSelectionNotFound is returned when the selected text does not occur in
// the note.
var ErrSelectionNotFound = errors.New("selection not found in note")

// Stdout is an editor whose selection comes from the command line and whose
// output goes to a writer.
type Stdout struct {
	selection string
	w         io.Writer
}

// NewStdout returns an editor with the given selection writing to w.
func NewStdout(selection string, w io.Writer) *Stdout {
	return &Stdout{selection: selection, w: w}
}

// Selection returns the command-line selection.
func (s *Stdout) Selection() string { return s.selection }

// ReplaceSelection writes text followed by a newline, unless text already
// ends with one.
func (s *Stdout) ReplaceSelection(text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(s.w, text)
	return err
}

// File edits a Markdown note in place.
type File struct {
	path      string
	selection string
}

// NewFile returns an editor for the note at path. selection is the text to
// replace; when empty the link is appended to the note.
func NewFile(path, selection string) *File {
	return &File{path: path, selection: selection}
}

// Path returns the note path.
func (f *File) Path() string { return f.path }

// Selection returns the text to be replaced.
func (f *File) Selection() string { return f.selection }

// ReplaceSelection replaces the first occurrence of the selection with text,
// or appends text when there is no selection. A missing note is created.
func (f *File) ReplaceSelection(text string) error {
	data, err := os.ReadFile(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading note %s: %w", f.path, err)
	}
	content := string(data)

	if f.selection != "" {
		idx := strings.Index(content, f.selection)
		if idx < 0 {
			return fmt.Errorf("%w: %q in %s", ErrSelectionNotFound, f.selection, f.path)
		}
		content = content[:idx] + text + content[idx+len(f.selection):]
	} else {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += text
	}

	perm := platform.ExistingPerm(f.path, 0644)
	if err := platform.WriteFileAtomic(f.path, []byte(content), perm); err != nil {
		return fmt.Errorf("writing note: %w", err)
	}
	return nil
}
