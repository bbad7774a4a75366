package cli

import (
	"fmt"

	"github.com/jiralink/jiralink/internal/settings"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check JiraLink settings",
	Long:  `Run diagnostic checks on the settings file and report anything that would stop a link command.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		problems, err := settings.Check(cmd.OutOrStdout(), store)
		if err != nil {
			return err
		}
		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		return nil
	},
}
