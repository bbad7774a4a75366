// Package cli defines the Cobra command tree for the jiralink CLI. The link
// commands are a thin host around internal/linker: they load settings,
// choose an editor (stdout or a note file) and a prompter, and report the
// outcome. The instance and config commands play the role of a settings
// panel.
package cli
