package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/picker"
)

// PersistentLabel is the label of the describe action bound to preview.
const PersistentLabel = "Describe (keep open)"

// Display names of the mode sources.
var sourceNames = map[string]string{
	domain.SourceMajorMode:          "Major Mode",
	domain.SourceActiveMinorModes:   "Active Minor Modes",
	domain.SourceInactiveMinorModes: "Inactive Minor Modes",
}

// ModeSources adapts the mode host to picker sources.
type ModeSources struct {
	host      domain.ModeHost
	presenter domain.Presenter
	logger    domain.Logger
	describe  *DescribeMode
	locate    *LocateMode
	customize *CustomizeMode
}

// NewModeSources creates the adapter.
func NewModeSources(host domain.ModeHost, presenter domain.Presenter, logger domain.Logger) *ModeSources {
	return &ModeSources{
		host:      host,
		presenter: presenter,
		logger:    logger,
		describe:  NewDescribeMode(host),
		locate:    NewLocateMode(host),
		customize: NewCustomizeMode(host),
	}
}

// Builders resolves source IDs to picker builders, in order. Unknown
// source IDs and unusable action entries are skipped and reported as
// warnings.
func (ms *ModeSources) Builders(cfg *domain.Config, ids []string) ([]picker.Builder, []string) {
	var (
		builders []picker.Builder
		warnings []string
	)
	for _, id := range ids {
		if !domain.KnownSource(id) {
			warnings = append(warnings, fmt.Sprintf("%v: %s", domain.ErrUnknownSource, id))
			continue
		}
		actions, ws := ms.menu(id, cfg.ActionsFor(id))
		warnings = append(warnings, ws...)
		builders = append(builders, picker.Builder{
			ID:    id,
			Build: ms.builder(id, actions),
		})
	}
	return builders, warnings
}

// menu binds configured action references to functions.
func (ms *ModeSources) menu(sourceID string, refs []domain.ActionRef) ([]picker.Action, []string) {
	defaults := domain.DefaultActions()[sourceID]
	var (
		actions  []picker.Action
		warnings []string
	)
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		run := ms.actionFunc(ref.ID)
		if run == nil {
			warnings = append(warnings, fmt.Sprintf("%v in [picker.actions.%s]: %s", domain.ErrUnknownActionID, sourceID, ref.ID))
			continue
		}
		label := ref.Label
		if label == "" {
			label = defaultLabel(defaults, ref.ID)
		}
		if _, dup := seen[label]; dup {
			warnings = append(warnings, fmt.Sprintf("duplicate action label in [picker.actions.%s]: %s", sourceID, label))
			continue
		}
		seen[label] = struct{}{}
		actions = append(actions, picker.Action{Label: label, Run: run})
	}
	return actions, warnings
}

func defaultLabel(defaults []domain.ActionRef, id string) string {
	for _, ref := range defaults {
		if ref.ID == id {
			return ref.Label
		}
	}
	return domain.DefaultActionLabel(id)
}

// builder returns the build function of one source. The host is read once
// per build; actions work on the values captured then.
func (ms *ModeSources) builder(id string, actions []picker.Action) func(context.Context) (*picker.Source, error) {
	return func(_ context.Context) (*picker.Source, error) {
		if len(actions) == 0 {
			return nil, fmt.Errorf("no usable actions configured for %s", id)
		}

		var (
			names []string
			err   error
		)
		switch id {
		case domain.SourceMajorMode:
			var major string
			major, err = ms.host.CurrentMajorMode()
			names = []string{major}
		case domain.SourceActiveMinorModes:
			names, err = ms.minorModes(true)
		case domain.SourceInactiveMinorModes:
			names, err = ms.minorModes(false)
		}
		if err != nil {
			return nil, err
		}
		ms.logger.Debug("", "picker", fmt.Sprintf("source %s: %d candidates", id, len(names)))

		src := &picker.Source{
			Name:       sourceNames[id],
			Candidates: picker.Strings(names...),
			Actions:    actions,
			Persistent: &picker.Action{Label: PersistentLabel, Run: each(ms.describeOne)},
		}
		if id == domain.SourceMajorMode {
			src.NoMark = true
		} else {
			src.Transformer = sortByName
		}
		return src, nil
	}
}

// minorModes returns the minor modes whose state equals active.
func (ms *ModeSources) minorModes(active bool) ([]string, error) {
	all, err := ms.host.AllMinorModes()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range all {
		on, err := ms.host.IsActive(name)
		if err != nil {
			return nil, err
		}
		if on == active {
			names = append(names, name)
		}
	}
	return names, nil
}

func sortByName(cands []picker.Candidate) []picker.Candidate {
	out := slices.Clone(cands)
	slices.SortFunc(out, func(a, b picker.Candidate) int {
		return strings.Compare(a.Value, b.Value)
	})
	return out
}

// actionFunc maps an action ID to its function; nil if unknown.
func (ms *ModeSources) actionFunc(id string) picker.ActionFunc {
	switch id {
	case domain.ActionDescribe:
		return each(ms.describeOne)
	case domain.ActionFind:
		return each(ms.findOne)
	case domain.ActionCustomize:
		return each(ms.customizeOne)
	case domain.ActionSetDefault:
		return each(func(_ context.Context, name string) error {
			return ms.host.SetDefaultMajorMode(name)
		})
	case domain.ActionTurnOn:
		return each(func(_ context.Context, name string) error {
			return ms.host.SetActive(name, true)
		})
	case domain.ActionTurnOff:
		return each(func(_ context.Context, name string) error {
			return ms.host.SetActive(name, false)
		})
	case domain.ActionToggle:
		return each(ms.toggleOne)
	}
	return nil
}

// each runs fn over every value, continuing past failures.
func each(fn func(ctx context.Context, name string) error) picker.ActionFunc {
	return func(ctx context.Context, values []string) error {
		var errs []error
		for _, name := range values {
			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
				break
			}
			if err := fn(ctx, name); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

func (ms *ModeSources) describeOne(ctx context.Context, name string) error {
	out, err := ms.describe.Execute(ctx, DescribeModeInput{Name: name})
	if err != nil {
		return err
	}
	ms.presenter.ShowHelp(out.Title, out.Body)
	return nil
}

func (ms *ModeSources) findOne(ctx context.Context, name string) error {
	out, err := ms.locate.Execute(ctx, LocateModeInput{Name: name})
	if err != nil {
		return err
	}
	return ms.presenter.Open(out.Location)
}

func (ms *ModeSources) customizeOne(ctx context.Context, name string) error {
	out, err := ms.customize.Execute(ctx, CustomizeModeInput{Name: name})
	if err != nil {
		return err
	}
	return ms.presenter.Open(out.Location)
}

func (ms *ModeSources) toggleOne(_ context.Context, name string) error {
	on, err := ms.host.IsActive(name)
	if err != nil {
		return err
	}
	return ms.host.SetActive(name, !on)
}
