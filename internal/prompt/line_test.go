package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jiralink/jiralink/internal/linker"
	"github.com/jiralink/jiralink/internal/tracker"
)

var testInstances = tracker.Collection{
	{Title: "Work", URL: "https://corp.atlassian.net"},
	{URL: "https://oss.atlassian.net"},
	{Title: "Home", URL: "https://me.atlassian.net"},
}

func TestLine_PromptIssue(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"answer", "PROJ-1\n", "PROJ-1", true},
		{"answer without newline", "PROJ-2", "PROJ-2", true},
		{"surrounding space", "  PROJ-3 \r\n", "PROJ-3", true},
		{"empty line", "\n", "", false},
		{"eof", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			l := NewLine(strings.NewReader(tt.input), &out)

			got, ok, err := l.PromptIssue(context.Background(), linker.DefaultIssuePrompt)
			if err != nil {
				t.Fatalf("PromptIssue error: %v", err)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("PromptIssue = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
			if !strings.Contains(out.String(), "Enter your Jira issue") {
				t.Errorf("prompt title missing from output: %q", out.String())
			}
		})
	}
}

func TestLine_PromptIssueCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLine(strings.NewReader("PROJ-1\n"), &bytes.Buffer{})
	if _, _, err := l.PromptIssue(ctx, linker.DefaultIssuePrompt); err == nil {
		t.Fatal("expected context error")
	}
}

func TestLine_ChooseInstance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantURL string
		wantOK  bool
	}{
		{"by number", "2\n", "https://oss.atlassian.net", true},
		{"by unique filter", "home\n", "https://me.atlassian.net", true},
		{"by untitled label", "instance 0\n", "https://oss.atlassian.net", true},
		{"no match then filter", "atlassian.net/\nxyz\nwork\n", "https://corp.atlassian.net", true},
		{"narrowed numbering", "me.atl\n", "https://me.atlassian.net", true},
		{"filter then pick from view", "o\n1\n", "https://corp.atlassian.net", true},
		{"out of range then valid", "9\n3\n", "https://me.atlassian.net", true},
		{"cancel", "\n", "", false},
		{"eof", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			l := NewLine(strings.NewReader(tt.input), &out)

			got, ok, err := l.ChooseInstance(context.Background(), testInstances)
			if err != nil {
				t.Fatalf("ChooseInstance error: %v", err)
			}
			if ok != tt.wantOK || got.URL != tt.wantURL {
				t.Errorf("ChooseInstance = (%q, %v), want (%q, %v)\noutput:\n%s", got.URL, ok, tt.wantURL, tt.wantOK, out.String())
			}
		})
	}
}

func TestLine_ChooseInstanceListsDisplayTitles(t *testing.T) {
	var out bytes.Buffer
	l := NewLine(strings.NewReader("\n"), &out)
	if _, _, err := l.ChooseInstance(context.Background(), testInstances); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"1) Work", "2) Instance 0", "3) Home"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestLine_CancelInterruptsPendingRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	l := NewLine(pr, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, _, err := l.PromptIssue(ctx, linker.DefaultIssuePrompt)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("PromptIssue error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("PromptIssue did not return after cancel")
	}
}

func TestLine_ReadError(t *testing.T) {
	boom := errors.New("broken pipe")
	pr, pw := io.Pipe()
	pw.CloseWithError(boom)

	l := NewLine(pr, io.Discard)
	_, _, err := l.PromptIssue(context.Background(), linker.DefaultIssuePrompt)
	if !errors.Is(err, boom) {
		t.Errorf("PromptIssue error = %v, want %v", err, boom)
	}
}
