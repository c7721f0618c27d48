package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xuchunyang/helm-describe-modes/internal/app"
	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/editor"
	"github.com/xuchunyang/helm-describe-modes/internal/picker"
	"github.com/xuchunyang/helm-describe-modes/internal/tui"
	"github.com/xuchunyang/helm-describe-modes/internal/usecase"
)

// launchPickerFunc runs the interactive picker, allowing it to be mocked in tests.
var launchPickerFunc = launchPicker

// openLocationFunc opens a location in the user's editor, allowing it to be mocked in tests.
var openLocationFunc = func(loc domain.Location) error {
	return editor.New().Open(loc)
}

// errNoContainer is returned by commands that need configuration when
// none could be loaded.
var errNoContainer = errors.New("configuration is not available")

func launchPicker(ctx context.Context, session *picker.Session, presenter *tui.Presenter) (tui.Result, error) {
	return tui.Run(ctx, session, presenter, os.Stdin, os.Stdout)
}

// openerFunc adapts a function to editor.Opener.
type openerFunc func(domain.Location) error

func (f openerFunc) Open(loc domain.Location) error {
	return f(loc)
}

// pickerOptions are the flags shared by the root command and pick.
type pickerOptions struct {
	Query   string
	Sources []string
}

func (o *pickerOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "", "Initial query")
	cmd.Flags().StringSliceVar(&o.Sources, "sources", nil, "Sources to show, in order (default from [picker] sources)")
	_ = cmd.RegisterFlagCompletionFunc("sources", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return domain.DefaultSources(), cobra.ShellCompDirectiveNoFileComp
	})
}

// newPickCommand creates the pick command.
func newPickCommand(c *app.Container) *cobra.Command {
	var opts pickerOptions

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the mode picker",
		Long: `Open the interactive mode picker.

Keys:
  C-n/C-p, up/down      move (wraps around)
  C-o, S-tab            jump to the next/previous source
  tab, C-SPC            mark the row and move down
  M-a, M-u              mark/unmark every visible row
  enter                 run the default action
  C-z                   describe without closing the picker
  C-a, M-enter          choose an action
  esc, C-c              quit

Action failures are reported but do not change the exit status.

Examples:
  # Open the picker
  describe-modes pick

  # Start with a query and only the minor mode sources
  describe-modes pick --query fly --sources active-minor-modes,inactive-minor-modes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPicker(cmd, c, opts)
		},
	}
	opts.register(cmd)

	return cmd
}

// runPicker opens a session, hands it to the TUI and reports what the
// actions produced once the TUI exits.
func runPicker(cmd *cobra.Command, c *app.Container, opts pickerOptions) error {
	if c == nil {
		return errNoContainer
	}

	presenter := tui.NewPresenter()
	uc := c.OpenPickerUseCase(presenter)
	out, err := uc.Execute(cmd.Context(), usecase.OpenPickerInput{
		Query:   opts.Query,
		Sources: opts.Sources,
	})
	if err != nil {
		return err
	}
	for _, w := range out.Warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}

	res, err := launchPickerFunc(cmd.Context(), out.Session, presenter)
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	reportPickerResult(cmd, res)
	return nil
}

// reportPickerResult prints notifications and help, then opens any
// locations the actions asked for.
func reportPickerResult(cmd *cobra.Command, res tui.Result) {
	errOut := cmd.ErrOrStderr()
	for _, n := range res.Notifications {
		switch n.Level {
		case picker.LevelWarning:
			_, _ = fmt.Fprintf(errOut, "Warning: %s\n", n.Message)
		case picker.LevelError:
			_, _ = fmt.Fprintf(errOut, "Error: %s\n", n.Message)
		}
	}

	p := editor.NewPresenter(cmd.OutOrStdout(), openerFunc(openLocationFunc))
	for i, h := range res.Helps {
		if i > 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
		}
		p.ShowHelp(h.Title, h.Body)
	}
	for _, loc := range res.Locations {
		if err := p.Open(loc); err != nil {
			_, _ = fmt.Fprintf(errOut, "Warning: %v\n", err)
		}
	}
}
