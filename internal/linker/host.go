package linker

import (
	"context"

	"github.com/jiralink/jiralink/internal/tracker"
)

// Editor is the host's view of the note being edited.
type Editor interface {
	// Selection returns the selected text, or "" when nothing is selected.
	Selection() string
	// ReplaceSelection replaces the selection with text, or inserts text at
	// the edit point when nothing is selected.
	ReplaceSelection(text string) error
}

// IssuePrompt describes the single-field issue key prompt.
type IssuePrompt struct {
	Title       string
	Description string
}

// DefaultIssuePrompt is shown when the editor has no selection.
var DefaultIssuePrompt = IssuePrompt{
	Title:       "Enter your Jira issue",
	Description: "Type in a jira issue number",
}

// Prompter asks the user for input. The bool result is false when the user
// dismissed the prompt.
type Prompter interface {
	PromptIssue(ctx context.Context, p IssuePrompt) (string, bool, error)
	ChooseInstance(ctx context.Context, instances tracker.Collection) (tracker.Instance, bool, error)
}

// Notifier surfaces advisory messages to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) { f(message) }
