package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/jiralink/jiralink/internal/linker"
	"github.com/jiralink/jiralink/internal/tracker"
)

// Line prompts on plain line-oriented streams, for pipes and dumb terminals.
type Line struct {
	r io.Reader
	w io.Writer

	once  sync.Once
	lines chan lineResult
}

type lineResult struct {
	text string
	err  error
}

// NewLine returns a Line prompter reading answers from r and writing
// questions to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: r, w: w}
}

// PromptIssue reads one line. An empty line or EOF dismisses the prompt.
func (l *Line) PromptIssue(ctx context.Context, p linker.IssuePrompt) (string, bool, error) {
	fmt.Fprintf(l.w, "%s\n%s\nJira Issue: ", p.Title, p.Description)

	answer, err := l.readLine(ctx)
	if err != nil {
		return "", false, err
	}
	if answer == "" {
		return "", false, nil
	}
	return answer, true, nil
}

// ChooseInstance prints a numbered list. A number picks that entry; any
// other text filters the list by title or URL, and a unique match is picked.
// An empty line or EOF dismisses the chooser.
func (l *Line) ChooseInstance(ctx context.Context, c tracker.Collection) (tracker.Instance, bool, error) {
	titles := c.DisplayTitles()
	view := c.Filter("")

	for {
		fmt.Fprintf(l.w, "\nSelect Jira instance:\n")
		for n, idx := range view {
			fmt.Fprintf(l.w, "  %d) %s  %s\n", n+1, titles[idx], c[idx].URL)
		}
		fmt.Fprintf(l.w, "Enter number [1-%d] or filter text: ", len(view))

		answer, err := l.readLine(ctx)
		if err != nil {
			return tracker.Instance{}, false, err
		}
		if answer == "" {
			return tracker.Instance{}, false, nil
		}

		if num, convErr := strconv.Atoi(answer); convErr == nil {
			if num >= 1 && num <= len(view) {
				return c[view[num-1]], true, nil
			}
			fmt.Fprintf(l.w, "invalid selection %q: choose 1-%d\n", answer, len(view))
			continue
		}

		matches := c.Filter(answer)
		switch len(matches) {
		case 0:
			fmt.Fprintf(l.w, "no instance matches %q\n", answer)
		case 1:
			return c[matches[0]], true, nil
		default:
			view = matches
		}
	}
}

// readLine returns the next trimmed line. EOF with no pending text reads as
// an empty answer. A cancelled ctx returns at once, even while a read is
// pending.
func (l *Line) readLine(ctx context.Context) (string, error) {
	l.once.Do(l.startReader)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a, ok := <-l.lines:
		if !ok {
			return "", nil
		}
		return a.text, a.err
	}
}

// startReader owns l.r for the prompter's lifetime so that an abandoned read
// never races a later one.
func (l *Line) startReader() {
	l.lines = make(chan lineResult, 1)
	go func() {
		defer close(l.lines)
		br := bufio.NewReader(l.r)
		for {
			line, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				l.lines <- lineResult{err: fmt.Errorf("reading answer: %w", err)}
				return
			}
			l.lines <- lineResult{text: strings.TrimSpace(line)}
			if err != nil {
				return
			}
		}
	}()
}
