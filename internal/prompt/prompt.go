package prompt

import (
	"io"
	"os"

	"github.com/jiralink/jiralink/internal/linker"
)

// New returns a TUI prompter when in is a terminal and a Line prompter
// otherwise.
func New(in *os.File, out io.Writer) linker.Prompter {
	if isTerminal(in) {
		return NewTUI(in, out)
	}
	return NewLine(in, out)
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
