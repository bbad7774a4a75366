// Package linker runs the three link commands against a host editor. It
// resolves which Jira instance to use, obtains the issue key from the editor
// selection or an interactive prompt, renders the link and hands it back to
// the editor. Hosts supply the editor, prompts and notification channel
// through small interfaces so the commands can run in a terminal, against a
// note file, or in tests.
package linker
