package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/jiralink/jiralink/internal/branding"
	"github.com/jiralink/jiralink/internal/linker"
	"github.com/jiralink/jiralink/internal/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
	log     = logrus.New()

	// store is opened in PersistentPreRunE for every command except version.
	store *settings.Store
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` turns Jira issue keys into Markdown links to a Jira instance, or into
wiki links to local issue notes, and inserts them into a note or prints them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configureLogging(cmd.ErrOrStderr())

		if cmd.Name() == "version" {
			return nil
		}

		s, err := settings.OpenDefault()
		if err != nil {
			return fmt.Errorf("opening settings: %w", err)
		}
		store = s

		migrated, err := s.Migrate()
		if err != nil {
			return fmt.Errorf("migrating settings: %w", err)
		}
		if migrated {
			log.WithField("path", s.Path()).Infof("migrated settings to version %s", settings.CurrentVersion)
			fmt.Fprintf(cmd.ErrOrStderr(), "Settings upgraded to version %s.\n", settings.CurrentVersion)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

// Execute runs the root command with build info injected via ldflags.
// Cancelled prompts are not errors. Missing configuration has already been
// reported to the user and is returned without printing it again.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, linker.ErrUserCancelled):
		return nil
	case errors.Is(err, linker.ErrConfigurationMissing):
		return err
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
}
