package linker

import (
	"context"
	"fmt"
	"io"

	"github.com/jiralink/jiralink/internal/linkfmt"
	"github.com/jiralink/jiralink/internal/settings"
	"github.com/jiralink/jiralink/internal/tracker"
	"github.com/sirupsen/logrus"
)

// Options configures a Linker.
type Options struct {
	Prompter Prompter
	Notifier Notifier
	Logger   logrus.FieldLogger
}

// Linker runs link commands against a settings snapshot. It never writes
// settings.
type Linker struct {
	settings *settings.Settings
	prompter Prompter
	notifier Notifier
	log      logrus.FieldLogger
}

// New returns a Linker for st. A nil Notifier drops advisories and a nil
// Logger discards log output. A nil Prompter treats every prompt as
// cancelled.
func New(st *settings.Settings, opts Options) *Linker {
	l := &Linker{
		settings: st,
		prompter: opts.Prompter,
		notifier: opts.Notifier,
		log:      opts.Logger,
	}
	if l.notifier == nil {
		l.notifier = NotifierFunc(func(string) {})
	}
	if l.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		l.log = discard
	}
	return l
}

// LinkIssue inserts a web link, asking the user to choose an instance when
// more than one is configured.
func (l *Linker) LinkIssue(ctx context.Context, ed Editor) (string, error) {
	outcome := tracker.Resolve(l.settings.Instances)
	l.log.WithField("outcome", outcome.Kind.String()).Debug("resolved instance")

	var inst tracker.Instance
	switch outcome.Kind {
	case tracker.Empty:
		return "", l.fail(MsgURLNotSet, settings.KeyInstances)
	case tracker.Single:
		inst = outcome.Instance
	case tracker.NeedsDisambiguation:
		chosen, err := l.choose(ctx, outcome.Candidates)
		if err != nil {
			return "", err
		}
		inst = chosen
	default:
		return "", fmt.Errorf("unexpected resolution outcome %s", outcome.Kind)
	}

	return l.insertWebLink(ctx, ed, inst)
}

// LinkIssueDefault inserts a web link to the default instance without
// prompting for a choice. With no instance flagged default the first one is
// used and the user is told which.
func (l *Linker) LinkIssueDefault(ctx context.Context, ed Editor) (string, error) {
	outcome := tracker.ResolveDefault(l.settings.Instances)
	l.log.WithFields(logrus.Fields{
		"outcome":  outcome.Kind.String(),
		"fallback": outcome.Fallback,
	}).Debug("resolved default instance")

	if outcome.Kind == tracker.Empty {
		return "", l.fail(MsgURLNotSet, settings.KeyInstances)
	}
	if outcome.Fallback {
		// The fallback is always the first entry.
		l.notifier.Notify(FallbackAdvisory(l.settings.Instances.DisplayTitles()[0]))
	}
	return l.insertWebLink(ctx, ed, outcome.Instance)
}

// LinkLocalIssue inserts a wiki link to the local note of an issue.
func (l *Linker) LinkLocalIssue(ctx context.Context, ed Editor) (string, error) {
	local := l.settings.Local()
	if local.BasePath == "" {
		return "", l.fail(MsgLocalPathNotSet, settings.KeyLocalIssuePath)
	}
	if local.UseProjectFolder && local.MainFileName == "" {
		return "", l.fail(MsgMainFileNotSet, settings.KeyMainFileName)
	}

	id, prompted, err := l.issueID(ctx, ed)
	if err != nil {
		return "", err
	}
	link := linkfmt.FormatLocalLink(local.BasePath, id, local.MainFileName, local.UseProjectFolder)
	return l.insert(ed, link, prompted)
}

func (l *Linker) insertWebLink(ctx context.Context, ed Editor, inst tracker.Instance) (string, error) {
	if inst.URL == "" {
		return "", l.fail(MsgURLNotSet, settings.KeyInstances)
	}

	id, prompted, err := l.issueID(ctx, ed)
	if err != nil {
		return "", err
	}
	l.log.WithFields(logrus.Fields{"instance": inst.Label(), "issue": id}).Debug("formatting web link")
	return l.insert(ed, linkfmt.FormatWebLink(inst.URL, id), prompted)
}

// issueID returns the selection, or asks for an issue key when nothing is
// selected. An empty answer counts as a cancel.
func (l *Linker) issueID(ctx context.Context, ed Editor) (string, bool, error) {
	if sel := ed.Selection(); sel != "" {
		return sel, false, nil
	}
	if l.prompter == nil {
		return "", false, ErrUserCancelled
	}

	id, ok, err := l.prompter.PromptIssue(ctx, DefaultIssuePrompt)
	if err != nil {
		return "", false, fmt.Errorf("prompting for issue: %w", err)
	}
	if !ok || id == "" {
		l.log.Debug("issue prompt dismissed")
		return "", false, ErrUserCancelled
	}
	return id, true, nil
}

func (l *Linker) choose(ctx context.Context, candidates tracker.Collection) (tracker.Instance, error) {
	if l.prompter == nil {
		return tracker.Instance{}, ErrUserCancelled
	}
	inst, ok, err := l.prompter.ChooseInstance(ctx, candidates)
	if err != nil {
		return tracker.Instance{}, fmt.Errorf("choosing instance: %w", err)
	}
	if !ok {
		l.log.Debug("instance chooser dismissed")
		return tracker.Instance{}, ErrUserCancelled
	}
	return inst, nil
}

func (l *Linker) insert(ed Editor, link string, prompted bool) (string, error) {
	if prompted && l.settings.NewlineOnInsert {
		link += "\n"
	}
	if err := ed.ReplaceSelection(link); err != nil {
		return "", fmt.Errorf("inserting link: %w", err)
	}
	l.log.WithField("text", link).Debug("inserted link")
	return link, nil
}

func (l *Linker) fail(message, setting string) error {
	l.notifier.Notify(message)
	return missing(setting)
}
