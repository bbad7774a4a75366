package settings

import (
	"github.com/jiralink/jiralink/internal/tracker"
)

// CurrentVersion is the settings document version written by this build.
const CurrentVersion = "2.0.0"

// DefaultMainFileName is the note name used inside a per-issue folder.
const DefaultMainFileName = "_Info"

// Keys of the settings document.
const (
	KeyVersion          = "version"
	KeyInstances        = "instances"
	KeyLocalIssuePath   = "local_issue_path"
	KeyMainFileName     = "main_file_name"
	KeyUseProjectFolder = "use_project_folder"
	KeyNewlineOnInsert  = "newline_on_insert"

	// KeyLegacyInstanceURL is the single-instance field of 1.x documents.
	KeyLegacyInstanceURL = "jira_instance_url"
)

// Settings is the persisted settings document.
type Settings struct {
	Version          string             `yaml:"version" mapstructure:"version"`
	Instances        tracker.Collection `yaml:"instances" mapstructure:"instances"`
	LocalIssuePath   string             `yaml:"local_issue_path" mapstructure:"local_issue_path"`
	MainFileName     string             `yaml:"main_file_name" mapstructure:"main_file_name"`
	UseProjectFolder bool               `yaml:"use_project_folder" mapstructure:"use_project_folder"`
	NewlineOnInsert  bool               `yaml:"newline_on_insert" mapstructure:"newline_on_insert"`

	LegacyInstanceURL string `yaml:"jira_instance_url,omitempty" mapstructure:"jira_instance_url"`
}

// LocalIssueConfig is the subset of settings used to build local note links.
type LocalIssueConfig struct {
	BasePath         string
	MainFileName     string
	UseProjectFolder bool
}

// Defaults returns a fresh document at the current version.
func Defaults() *Settings {
	return &Settings{
		Version:          CurrentVersion,
		MainFileName:     DefaultMainFileName,
		UseProjectFolder: true,
	}
}

// Local returns the local issue link configuration.
func (s *Settings) Local() LocalIssueConfig {
	return LocalIssueConfig{
		BasePath:         s.LocalIssuePath,
		MainFileName:     s.MainFileName,
		UseProjectFolder: s.UseProjectFolder,
	}
}
