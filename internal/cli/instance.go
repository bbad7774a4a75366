package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/jiralink/jiralink/internal/settings"
	"github.com/jiralink/jiralink/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	instanceTitle   string
	instanceDefault bool
)

func init() {
	instanceAddCmd.Flags().StringVar(&instanceTitle, "title", "", "Display title for the instance")
	instanceAddCmd.Flags().BoolVar(&instanceDefault, "default", false, "Make this the default instance")

	instanceCmd.AddCommand(instanceListCmd)
	instanceCmd.AddCommand(instanceAddCmd)
	instanceCmd.AddCommand(instanceRemoveCmd)
	instanceCmd.AddCommand(instanceDefaultCmd)
	rootCmd.AddCommand(instanceCmd)
}

var instanceCmd = &cobra.Command{
	Use:   "instance",
	Short: "Manage configured Jira instances",
	Long: `Add, remove and list the Jira instances links can point at. Instances are
numbered from 1 in the order they were added; that order also decides which
instance wins when several are marked default.`,
}

var instanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured Jira instances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Load()
		if err != nil {
			return err
		}
		if len(st.Instances) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No Jira instances configured.")
			return nil
		}

		titles := st.Instances.DisplayTitles()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tTITLE\tURL\tDEFAULT")
		for i, inst := range st.Instances {
			def := ""
			if inst.IsDefault {
				def = "yes"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, titles[i], inst.URL, def)
		}
		return tw.Flush()
	},
}

var instanceAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a Jira instance",
	Long: `Add a Jira instance by its base URL. A trailing slash is removed.

Example:
  jiralink instance add https://example.atlassian.net --title Work --default`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := tracker.CanonicalURL(args[0])
		if err != nil {
			return err
		}

		err = store.Update(func(st *settings.Settings) error {
			for _, inst := range st.Instances {
				if inst.URL == url {
					return fmt.Errorf("instance %s is already configured", url)
				}
			}
			st.Instances = append(st.Instances, tracker.Instance{Title: instanceTitle, URL: url})
			if instanceDefault {
				st.Instances = st.Instances.WithDefault(len(st.Instances) - 1)
			}
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", url)
		return nil
	},
}

var instanceRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove a Jira instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var removed tracker.Instance
		err := store.Update(func(st *settings.Settings) error {
			idx, err := parseIndex(args[0], len(st.Instances))
			if err != nil {
				return err
			}
			removed = st.Instances[idx]
			st.Instances = append(st.Instances[:idx:idx], st.Instances[idx+1:]...)
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", removed.Label())
		return nil
	},
}

var instanceDefaultCmd = &cobra.Command{
	Use:   "default <number>",
	Short: "Mark a Jira instance as the default",
	Long:  `Mark one instance as the default used by link-default. Any other default flag is cleared.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var chosen tracker.Instance
		err := store.Update(func(st *settings.Settings) error {
			idx, err := parseIndex(args[0], len(st.Instances))
			if err != nil {
				return err
			}
			st.Instances = st.Instances.WithDefault(idx)
			chosen = st.Instances[idx]
			return nil
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default instance is now %s\n", chosen.Label())
		return nil
	},
}

// parseIndex converts a 1-based instance number to a slice index.
func parseIndex(arg string, n int) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("no Jira instances configured")
	}
	num, err := strconv.Atoi(arg)
	if err != nil || num < 1 || num > n {
		return 0, fmt.Errorf("invalid instance number %q: choose 1-%d", arg, n)
	}
	return num - 1, nil
}
