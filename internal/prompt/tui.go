package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jiralink/jiralink/internal/linker"
	"github.com/jiralink/jiralink/internal/tracker"
)

// TUI prompts with full-screen bubbletea programs.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// NewTUI returns a TUI prompter reading keys from in and drawing to out.
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// PromptIssue shows the issue input.
func (t *TUI) PromptIssue(ctx context.Context, p linker.IssuePrompt) (string, bool, error) {
	final, err := t.run(ctx, NewIssueInput(p))
	if err != nil {
		return "", false, err
	}
	m, ok := final.(IssueInputModel)
	if !ok {
		return "", false, fmt.Errorf("unexpected model type %T", final)
	}
	v, submitted := m.Value()
	return v, submitted, nil
}

// ChooseInstance shows the instance chooser.
func (t *TUI) ChooseInstance(ctx context.Context, c tracker.Collection) (tracker.Instance, bool, error) {
	final, err := t.run(ctx, NewInstanceList(c))
	if err != nil {
		return tracker.Instance{}, false, err
	}
	m, ok := final.(InstanceListModel)
	if !ok {
		return tracker.Instance{}, false, fmt.Errorf("unexpected model type %T", final)
	}
	inst, chosen := m.Selected()
	return inst, chosen, nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}
