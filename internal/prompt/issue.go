package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jiralink/jiralink/internal/linker"
)

// IssueInputModel is a single-field bubbletea prompt for an issue key.
// Enter submits only a non-empty value; Esc and Ctrl+C dismiss it.
type IssueInputModel struct {
	title       string
	description string
	input       textinput.Model
	value       string
	submitted   bool
}

// NewIssueInput returns a focused issue input for p.
func NewIssueInput(p linker.IssuePrompt) IssueInputModel {
	t := textinput.New()
	t.Placeholder = "PROJ-123"
	t.Prompt = "Jira Issue: "
	t.CharLimit = 0 // issue keys are opaque, never truncated
	t.Focus()

	return IssueInputModel{
		title:       p.Title,
		description: p.Description,
		input:       t,
	}
}

// Init starts the cursor blinking.
func (m IssueInputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m IssueInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if v := strings.TrimSpace(m.input.Value()); v != "" {
				m.value = v
				m.submitted = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m IssueInputModel) View() string {
	if m.submitted {
		return ""
	}
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(m.title))
	fmt.Fprintln(&b, descriptionStyle.Render(m.description))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, m.input.View())
	fmt.Fprintln(&b)
	b.WriteString(helpStyle.Render("enter: link issue • esc: cancel"))
	return docStyle.Render(b.String())
}

// Value returns the submitted issue key and whether one was submitted.
func (m IssueInputModel) Value() (string, bool) {
	return m.value, m.submitted
}
