package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/fitcircle/internal/account"
	"github.com/phrazzld/fitcircle/internal/clock"
	"github.com/phrazzld/fitcircle/internal/community"
	"github.com/phrazzld/fitcircle/internal/config"
	"github.com/phrazzld/fitcircle/internal/console"
	"github.com/phrazzld/fitcircle/internal/domain"
	"github.com/phrazzld/fitcircle/internal/events"
	"github.com/phrazzld/fitcircle/internal/journal"
	"github.com/phrazzld/fitcircle/internal/plan"
	"github.com/phrazzld/fitcircle/internal/platform/logger"
	"github.com/phrazzld/fitcircle/internal/reminder"
)

// app holds the long-lived components shared by a session.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	clock     clock.Clock
	accounts  *account.Manager
	feed      *community.Community
	reminders *reminder.Store
}

// newApp wires the components from configuration. Logs go to logOut so
// that the interactive session owns stdout.
func newApp(cfg *config.Config, c clock.Clock, logOut io.Writer) (*app, error) {
	l, err := logger.SetupWithWriter(cfg.Log, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: l,
		clock:  clock.OrReal(c),
		accounts: account.NewManager(
			account.NewBcryptHasher(cfg.Auth.BcryptCost),
			account.WithClock(c),
			account.WithLogger(l),
		),
		feed: community.New(community.WithClock(c), community.WithLogger(l)),
		reminders: reminder.NewStore(
			reminder.WithClock(c),
			reminder.WithLogger(l),
			reminder.WithTimeLayout(cfg.Display.TimeLayout),
		),
	}
	a.feed.AddObserver(&activityLog{logger: l.With("component", "activity_log")})

	return a, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	a, err := newApp(cfg, clock.Real{}, stderr)
	if err != nil {
		return err
	}

	a.logger.Info("configuration loaded",
		"log_level", cfg.Log.Level,
		"bcrypt_cost", cfg.Auth.BcryptCost)

	return a.session(ctx, opts, stdin, stdout)
}

// session walks one member through the feed, reminders, plan and report.
func (a *app) session(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer) error {
	if _, err := a.accounts.CreateUser(opts.username, opts.password, opts.email); err != nil {
		return fmt.Errorf("failed to register %q: %w", opts.username, err)
	}
	user, err := a.accounts.LoginUser(opts.username, opts.password)
	if err != nil {
		return fmt.Errorf("failed to log in %q: %w", opts.username, err)
	}

	if _, err := a.feed.AddMember(ctx, user); err != nil {
		return err
	}
	post, err := a.feed.CreatePost(ctx, user, "Hi everyone, "+user.Username+" just joined!")
	if err != nil {
		return err
	}
	post.AddLike()
	fmt.Fprintf(stdout, "%s\n", post.Details(a.cfg.Display.TimeLayout))

	a.reminders.AddReminder("Today's Training", a.clock.Now(), "Remember to do 30-minute aerobic exercise")
	for _, msg := range a.reminders.TriggerReminders() {
		fmt.Fprintln(stdout, msg)
	}

	j := journal.New(user, a.logger)
	if opts.records != "" {
		if err := importRecords(j, opts.records); err != nil {
			return err
		}
	}

	prompter := console.NewPrompter(stdin, stdout)
	defer prompter.Close()

	planner := j.Planner(prompter,
		plan.WithPrompt(a.cfg.Plan.Prompt),
		plan.WithLogger(a.logger))
	fullPlan, err := planner.FullPlan(ctx)
	if err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}

	fmt.Fprintf(stdout, "\n%s\n\n%s\n", fullPlan, j.Monitor().ComprehensiveReport())
	return nil
}

func importRecords(j *journal.Journal, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open records: %w", err)
	}
	defer f.Close()

	if _, _, err := j.Import(f); err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	return nil
}

// activityLog records community changes in the structured log.
type activityLog struct {
	logger *slog.Logger
}

// Update implements events.Observer.
func (o *activityLog) Update(ctx context.Context, event *events.Event) error {
	attrs := []any{"event_id", event.ID, "event_type", event.Type}
	switch data := event.Data.(type) {
	case *domain.User:
		attrs = append(attrs, "username", data.Username)
	case *community.Post:
		attrs = append(attrs, "post_id", data.ID, "content_length", len(strings.TrimSpace(data.Content)))
	}
	o.logger.InfoContext(ctx, "community activity", attrs...)
	return nil
}
