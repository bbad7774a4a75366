// Package settings owns the JiraLink settings document: the configured Jira
// instances and the local issue note layout. It loads and saves the YAML file,
// validates it against an embedded JSON Schema, upgrades documents written by
// older versions, and produces the health report shown by `jiralink doctor`.
package settings
