// Package cli is the tasksync command-line client.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tasksync/config"
	"tasksync/internal/bootstrap"
	"tasksync/internal/session"
)

var (
	errNotLoggedIn  = errors.New("not logged in, run `tasksync login`")
	errExpired      = errors.New("session expired or revoked, run `tasksync login`")
	errUnreachable  = errors.New("backend unreachable, your credential is kept; run `tasksync retry` once it is back")
	errTaskNotFound = errors.New("task not found")
)

// Loader builds the wired client. verbose keeps the configured log level,
// otherwise only errors are logged.
type Loader func(verbose bool) (*bootstrap.App, error)

// DefaultLoader reads the configuration from disk and environment.
func DefaultLoader(verbose bool) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !verbose {
		cfg.Logger.Level = "error"
	}
	return bootstrap.New(cfg, bootstrap.NewLogger(cfg.Logger)), nil
}

// runtime is shared by every command of one invocation.
type runtime struct {
	loader   Loader
	app      *bootstrap.App
	restored bool

	verbose bool
	json    bool
}

func New() *cobra.Command {
	return NewWithLoader(DefaultLoader)
}

func NewWithLoader(load Loader) *cobra.Command {
	rt := &runtime{loader: load}

	cmd := &cobra.Command{
		Use:           "tasksync",
		Short:         "Manage your tasks from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&rt.json, "json", false, "Print results as JSON.")
	cmd.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "Log at the configured level.")

	addCommands(cmd, rt)
	return cmd
}

func addCommands(topLevel *cobra.Command, rt *runtime) {
	addRegister(topLevel, rt)
	addLogin(topLevel, rt)
	addLogout(topLevel, rt)
	addStatus(topLevel, rt)
	addRetry(topLevel, rt)

	addList(topLevel, rt)
	addSearch(topLevel, rt)
	addAdd(topLevel, rt)
	addEdit(topLevel, rt)
	addToggle(topLevel, rt)
	addRemove(topLevel, rt)
	addShow(topLevel, rt)
}

// wire builds the client once per invocation.
func (rt *runtime) wire() error {
	if rt.app != nil {
		return nil
	}
	app, err := rt.loader(rt.verbose)
	if err != nil {
		return err
	}
	rt.app = app
	return nil
}

// connect restores the persisted session once per invocation.
func (rt *runtime) connect(ctx context.Context) (session.Status, error) {
	if err := rt.wire(); err != nil {
		return session.StatusAbsent, err
	}
	if rt.restored {
		return rt.app.Session.Status(), nil
	}
	rt.restored = true
	return rt.app.Session.Restore(ctx)
}

// requireSession fails unless the restored session is verified. An invalid
// session is acknowledged so the next invocation starts from a clean slot.
func (rt *runtime) requireSession(ctx context.Context) error {
	st, err := rt.connect(ctx)
	if err != nil {
		return err
	}
	switch st {
	case session.StatusVerified:
		return nil
	case session.StatusUnreachable:
		return errUnreachable
	case session.StatusInvalid:
		_ = rt.app.Session.Acknowledge(ctx)
		return errExpired
	default:
		return errNotLoggedIn
	}
}

func (rt *runtime) printer(cmd *cobra.Command) printer {
	return printer{out: cmd.OutOrStdout(), json: rt.json}
}
