package linker

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationMissing means a required setting is empty. The user
	// has already been notified when a command returns it.
	ErrConfigurationMissing = errors.New("configuration missing")

	// ErrUserCancelled means a prompt was dismissed. Nothing was inserted
	// and the user does not need to be told.
	ErrUserCancelled = errors.New("cancelled by user")
)

// Advisory messages shown through the Notifier.
const (
	MsgURLNotSet       = "The Jira URL has not been set in settings"
	MsgLocalPathNotSet = "The local issue path has not been set in settings"
	MsgMainFileNotSet  = "The main file name has not been set in settings"
)

// FallbackAdvisory names the instance used when no default is configured.
// title is the instance's display title, as shown by the chooser.
func FallbackAdvisory(title string) string {
	return fmt.Sprintf("No default Jira instance configured, using %s", title)
}

func missing(setting string) error {
	return fmt.Errorf("%w: %s", ErrConfigurationMissing, setting)
}
