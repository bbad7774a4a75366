// Package config locates the user-level settings file stored at
// ~/.jiralink/settings.yaml and opens it through Viper so that values can be
// overridden from JIRALINK_* environment variables.
package config
