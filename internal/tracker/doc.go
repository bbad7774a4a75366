// Package tracker models the configured Jira instances and decides which one
// a link should point at. Resolution is a pure function of the configured
// collection: it never prompts, logs or touches settings.
package tracker
