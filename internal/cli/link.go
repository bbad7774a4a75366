package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jiralink/jiralink/internal/linker"
	"github.com/jiralink/jiralink/internal/note"
	"github.com/jiralink/jiralink/internal/prompt"
	"github.com/spf13/cobra"
)

// linkAction is one of the Linker command methods.
type linkAction func(l *linker.Linker, ctx context.Context, ed linker.Editor) (string, error)

func init() {
	rootCmd.AddCommand(newLinkCommand(
		"link",
		"Link a Jira issue",
		`Insert a Markdown link to a Jira issue, e.g. [PROJ-1](https://x.atlassian.net/browse/PROJ-1).

When several Jira instances are configured you are asked which one to use.
Without an ISSUE argument you are prompted for the issue key.

Example:
  jiralink link PROJ-1
  jiralink link PROJ-1 --file notes/today.md`,
		(*linker.Linker).LinkIssue,
	))
	rootCmd.AddCommand(newLinkCommand(
		"link-default",
		"Link a Jira issue on the default instance",
		`Insert a Markdown link to a Jira issue on the default instance without asking
which instance to use. When no instance is marked default the first one is used
and a notice names it.

Example:
  jiralink link-default PROJ-1`,
		(*linker.Linker).LinkIssueDefault,
	))
	rootCmd.AddCommand(newLinkCommand(
		"link-local",
		"Link a Jira issue to its local note",
		`Insert a wiki link to the local note of a Jira issue, following the layout in
settings: [[<local_issue_path>/<ISSUE>/<main_file_name>|<ISSUE>]] with
use_project_folder, or [[<local_issue_path>/<ISSUE><main_file_name>|<ISSUE>]]
without it.

Example:
  jiralink link-local PROJ-1 --file notes/today.md`,
		(*linker.Linker).LinkLocalIssue,
	))
}

func newLinkCommand(use, short, long string, action linkAction) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   use + " [ISSUE]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection := ""
			if len(args) == 1 {
				selection = args[0]
			}

			st, err := store.Load()
			if err != nil {
				return err
			}

			l := linker.New(st, linker.Options{
				Prompter: newPrompter(cmd),
				Notifier: linker.NotifierFunc(func(msg string) {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}),
				Logger: log,
			})

			var ed linker.Editor = note.NewStdout(selection, cmd.OutOrStdout())
			if file != "" {
				ed = note.NewFile(file, selection)
			}

			inserted, err := action(l, cmd.Context(), ed)
			if err != nil {
				return err
			}
			if file != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Inserted %s into %s\n", strings.TrimSuffix(inserted, "\n"), file)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Insert into this Markdown note instead of printing (replaces ISSUE in the note, or appends)")
	return cmd
}

// newPrompter draws prompts on stderr so stdout carries only the link.
func newPrompter(cmd *cobra.Command) linker.Prompter {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return prompt.New(f, cmd.ErrOrStderr())
	}
	return prompt.NewLine(cmd.InOrStdin(), cmd.ErrOrStderr())
}
