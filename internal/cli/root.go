// Package cli provides the command-line interface for describe-modes.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xuchunyang/helm-describe-modes/internal/app"
)

// Command group IDs.
const (
	groupPicker = "picker"
	groupModes  = "modes"
	groupSetup  = "setup"
)

// NewRootCommand creates the root command for describe-modes.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts pickerOptions

	root := &cobra.Command{
		Use:   "describe-modes",
		Short: "Browse and switch major and minor modes",
		Long: `describe-modes is an incremental picker over the modes declared in
your configuration.

The picker shows the current major mode, the active minor modes and the
inactive minor modes as separate sources. Type to narrow the candidates,
mark several rows with tab, and press enter to run the default action of
the selected source, or ctrl+a to choose another action.

Run without a subcommand to open the picker.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPicker(cmd, c, opts)
		},
	}
	opts.register(root)

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupPicker, Title: "Picker:"},
		&cobra.Group{ID: groupModes, Title: "Mode Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	pickCmd := newPickCommand(c)
	pickCmd.GroupID = groupPicker

	listCmd := newListCommand(c)
	listCmd.GroupID = groupModes

	describeCmd := newDescribeCommand(c)
	describeCmd.GroupID = groupModes

	toggleCmd := newToggleCommand(c)
	toggleCmd.GroupID = groupModes

	majorCmd := newMajorCommand(c)
	majorCmd.GroupID = groupModes

	findCmd := newFindCommand(c)
	findCmd.GroupID = groupModes

	customizeCmd := newCustomizeCommand(c)
	customizeCmd.GroupID = groupModes

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		pickCmd,
		listCmd,
		describeCmd,
		toggleCmd,
		majorCmd,
		findCmd,
		customizeCmd,
		configCmd,
	)

	root.SetHelpCommandGroupID(groupSetup)
	root.SetCompletionCommandGroupID(groupSetup)

	return root
}
