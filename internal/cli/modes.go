package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xuchunyang/helm-describe-modes/internal/app"
	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/editor"
	"github.com/xuchunyang/helm-describe-modes/internal/usecase"
)

// Output formats of the list command.
const (
	formatTable = "table"
	formatYAML  = "yaml"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format   string
		Active   bool
		Inactive bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List modes",
		Long: `List the current major mode and every declared minor mode.

Output format is a table with columns:
  MODE, KIND, STATE, LIGHTER, DESCRIPTION

With --active or --inactive only minor modes in that state are listed.

Examples:
  # List everything
  describe-modes list

  # Only the minor modes that are switched on, as YAML
  describe-modes list --active --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errNoContainer
			}
			if opts.Format != formatTable && opts.Format != formatYAML {
				return fmt.Errorf("unknown format %q (want %s or %s)", opts.Format, formatTable, formatYAML)
			}

			filter := usecase.FilterAll
			switch {
			case opts.Active:
				filter = usecase.FilterActive
			case opts.Inactive:
				filter = usecase.FilterInactive
			}

			uc := c.ListModesUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListModesInput{Filter: filter})
			if err != nil {
				return err
			}

			if opts.Format == formatYAML {
				return printModesYAML(cmd.OutOrStdout(), out)
			}
			printModesTable(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Active, "active", false, "Only list active minor modes")
	cmd.Flags().BoolVar(&opts.Inactive, "inactive", false, "Only list inactive minor modes")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatTable, "Output format: table or yaml")
	cmd.MarkFlagsMutuallyExclusive("active", "inactive")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{formatTable, formatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// modeState returns the STATE column of an entry.
func modeState(e usecase.ModeEntry) string {
	switch {
	case e.Mode.IsMajor():
		return "current"
	case !e.Mode.Toggle:
		if e.Active {
			return "on (fixed)"
		}
		return "off (fixed)"
	case e.Active:
		return "on"
	default:
		return "off"
	}
}

// printModesTable prints modes in aligned columns.
func printModesTable(w io.Writer, out *usecase.ListModesOutput) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "MODE\tKIND\tSTATE\tLIGHTER\tDESCRIPTION")

	entries := out.Minor
	if out.Major != nil {
		entries = append([]usecase.ModeEntry{*out.Major}, entries...)
	}
	for _, e := range entries {
		lighter := strings.TrimSpace(e.Mode.Lighter)
		if lighter == "" {
			lighter = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Mode.Name, e.Mode.Kind, modeState(e), lighter, firstLine(e.Mode.Description))
	}
	_ = tw.Flush()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

// modeDoc is the YAML form of a listed mode.
type modeDoc struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Lighter     string `yaml:"lighter,omitempty"`
	Description string `yaml:"description,omitempty"`
	Definition  string `yaml:"definition,omitempty"`
	Active      bool   `yaml:"active"`
	Toggle      bool   `yaml:"toggle"`
}

// modesDoc is the YAML document printed by list --format yaml.
type modesDoc struct {
	Major *modeDoc  `yaml:"major,omitempty"`
	Minor []modeDoc `yaml:"minor"`
}

func newModeDoc(e usecase.ModeEntry) modeDoc {
	return modeDoc{
		Name:        e.Mode.Name,
		Kind:        string(e.Mode.Kind),
		Lighter:     e.Mode.Lighter,
		Description: e.Mode.Description,
		Definition:  e.Mode.Definition.String(),
		Active:      e.Active,
		Toggle:      e.Mode.Toggle,
	}
}

// printModesYAML prints modes as a YAML document.
func printModesYAML(w io.Writer, out *usecase.ListModesOutput) error {
	doc := modesDoc{Minor: make([]modeDoc, 0, len(out.Minor))}
	if out.Major != nil {
		major := newModeDoc(*out.Major)
		doc.Major = &major
	}
	for _, e := range out.Minor {
		doc.Minor = append(doc.Minor, newModeDoc(e))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// newDescribeCommand creates the describe command.
func newDescribeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:               "describe <mode>",
		Short:             "Show the help text of a mode",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeModes(c, nil),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errNoContainer
			}
			uc := c.DescribeModeUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DescribeModeInput{Name: args[0]})
			if err != nil {
				return err
			}
			editor.NewPresenter(cmd.OutOrStdout(), openerFunc(openLocationFunc)).ShowHelp(out.Title, out.Body)
			return nil
		},
	}
}

// newToggleCommand creates the toggle command.
func newToggleCommand(c *app.Container) *cobra.Command {
	var opts struct {
		On  bool
		Off bool
	}

	cmd := &cobra.Command{
		Use:   "toggle <mode>",
		Short: "Turn a minor mode on or off",
		Long: `Flip a minor mode, or force it on or off.

Examples:
  # Flip flyspell-mode
  describe-modes toggle flyspell-mode

  # Make sure abbrev-mode is on
  describe-modes toggle abbrev-mode --on`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeModes(c, (*domain.Mode).IsMinor),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errNoContainer
			}
			in := usecase.ToggleModeInput{Name: args[0]}
			if opts.On || opts.Off {
				on := opts.On
				in.On = &on
			}

			uc := c.ToggleModeUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			state := "off"
			if out.Active {
				state = "on"
			}
			if out.Changed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s turned %s\n", out.Name, state)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is already %s\n", out.Name, state)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.On, "on", false, "Turn the mode on")
	cmd.Flags().BoolVar(&opts.Off, "off", false, "Turn the mode off")
	cmd.MarkFlagsMutuallyExclusive("on", "off")

	return cmd
}

// newMajorCommand creates the major command.
func newMajorCommand(c *app.Container) *cobra.Command {
	var setDefault bool

	cmd := &cobra.Command{
		Use:   "major [mode]",
		Short: "Show or switch the major mode",
		Long: `Without an argument, print the current major mode.
With an argument, switch to that major mode.

With --default the mode becomes the one used until a major mode is
chosen explicitly; the current major mode is left alone.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeModes(c, (*domain.Mode).IsMajor),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errNoContainer
			}
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				if setDefault {
					return errors.New("--default requires a mode name")
				}
				out, err := c.ListModesUseCase().Execute(cmd.Context(), usecase.ListModesInput{})
				if err != nil {
					return err
				}
				if out.Major == nil {
					return domain.ErrNoMajorMode
				}
				_, _ = fmt.Fprintln(w, out.Major.Mode.Name)
				return nil
			}

			name := args[0]
			if setDefault {
				uc := c.SetDefaultMajorModeUseCase()
				if _, err := uc.Execute(cmd.Context(), usecase.SetDefaultMajorModeInput{Name: name}); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "Default major mode set to %s\n", name)
				return nil
			}

			uc := c.SetMajorModeUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetMajorModeInput{Name: name})
			if err != nil {
				return err
			}
			if out.Previous != "" && out.Previous != name {
				_, _ = fmt.Fprintf(w, "Switched to %s (was %s)\n", name, out.Previous)
			} else {
				_, _ = fmt.Fprintf(w, "Switched to %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&setDefault, "default", false, "Set the default major mode instead")

	return cmd
}

// newFindCommand creates the find command.
func newFindCommand(c *app.Container) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:               "find <mode>",
		Short:             "Open the declaration of a mode in $EDITOR",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeModes(c, nil),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errNoContainer
			}
			uc := c.LocateModeUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.LocateModeInput{Name: args[0]})
			if err != nil {
				return err
			}
			if printOnly {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Location)
				return nil
			}
			return openLocationFunc(out.Location)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print file:line instead of opening the editor")

	return cmd
}

// newCustomizeCommand creates the customize command.
func newCustomizeCommand(c *app.Container) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "customize <mode>",
		Short: "Open the options of a mode in $EDITOR",
		Long: `Open the [modes.<name>.options] table of a mode in $EDITOR.

Modes without an options table open at their declaration instead.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeModes(c, nil),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errNoContainer
			}
			uc := c.CustomizeModeUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CustomizeModeInput{Name: args[0]})
			if err != nil {
				return err
			}
			if printOnly {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Location)
				return nil
			}
			if !out.Options {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s has no options table, opening its declaration\n", args[0])
			}
			return openLocationFunc(out.Location)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print file:line instead of opening the editor")

	return cmd
}

// completeModes completes the first argument with declared mode names
// accepted by keep. A nil keep accepts every mode.
func completeModes(c *app.Container, keep func(*domain.Mode) bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if c == nil || c.AppConfig == nil || len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var names []string
		for name, m := range c.AppConfig.Modes {
			if keep == nil || keep(&m) {
				names = append(names, name)
			}
		}
		slices.Sort(names)
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
