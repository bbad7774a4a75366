// Package prompt implements the interactive prompts used by the link
// commands: a bubbletea text input for the issue key and a filterable list
// for choosing a Jira instance, plus a line-oriented fallback for when stdin
// is not a terminal.
package prompt
