package cmd

import (
	"context"
	"fmt"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
)

// SessionsRebasedCmd records that a session just took in its main branch
// (rebase or merge from main), so only its working tree needs probing
type SessionsRebasedCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Name   string `arg:"" help:"Name of the session that was rebased onto main"`
}

// Run executes the rebased command
func (s *SessionsRebasedCmd) Run(cli *CLI) error {
	ctx := context.Background()
	session, err := eligibleSession(ctx, cli, s.Name)
	if err != nil {
		return err
	}

	seedFromRecorded(ctx, cli, []domain.Session{*session})
	status := cli.Container.Engine.ApplyKnownTransition(ctx, s.Name, domain.TransitionFromMain)
	rows := []statusRow{{Session: s.Name, Status: status}}
	recordRows(ctx, cli, rows)

	if s.Format == "json" {
		return printJSON(rows)
	}
	printStatusTable(rows)
	return nil
}

// SessionsMergedCmd records that a session's branch was merged into main.
// The session drops its divergence; the project's other sessions get their
// ahead/behind counts recomputed.
type SessionsMergedCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Name   string `arg:"" help:"Name of the session that was merged into main"`
}

// Run executes the merged command
func (s *SessionsMergedCmd) Run(cli *CLI) error {
	ctx := context.Background()
	session, err := eligibleSession(ctx, cli, s.Name)
	if err != nil {
		return err
	}

	siblings, err := cli.Container.SessionService.ListSessions(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	var project []domain.Session
	for _, sess := range siblings {
		if sess.ProjectID == session.ProjectID && sess.Eligible() {
			project = append(project, sess)
		}
	}

	engine := cli.Container.Engine
	seedFromRecorded(ctx, cli, project)
	cached := engine.Snapshot()
	for _, sess := range project {
		// nothing recorded: inspect now, a deferred refresh would not outlive this process
		if _, ok := cached[sess.Name]; !ok && sess.Name != s.Name {
			engine.GetStatus(ctx, sess.Name)
		}
	}

	summary := engine.NotifyMainBranchUpdated(ctx, session.ProjectID, s.Name)
	if summary.Failed > 0 {
		logging.Logger.Warn("Some sessions could not be reconciled", "failed", summary.Failed, "total", summary.Total)
	}

	statuses := engine.Snapshot()
	rows := make([]statusRow, 0, len(project))
	for _, sess := range project {
		row := statusRow{Session: sess.Name}
		if status, ok := statuses[sess.Name]; ok {
			row.Status = &status
		}
		rows = append(rows, row)
	}
	recordRows(ctx, cli, rows)

	if s.Format == "json" {
		return printJSON(rows)
	}
	printStatusTable(rows)
	return nil
}

func eligibleSession(ctx context.Context, cli *CLI, name string) (*domain.Session, error) {
	session, err := cli.Container.SessionService.GetSession(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	if !session.Eligible() {
		return nil, fmt.Errorf("session '%s' is archived or in error", name)
	}
	return session, nil
}

// seedFromRecorded loads the statuses last recorded by watch into the engine
func seedFromRecorded(ctx context.Context, cli *CLI, sessions []domain.Session) {
	recorded, err := cli.Container.StatusStore.LoadStatuses(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load recorded statuses", "error", err)
		return
	}
	for _, sess := range sessions {
		if status, ok := recorded[sess.Name]; ok {
			cli.Container.Engine.Seed(sess.Name, status)
		}
	}
}

// recordRows persists the new statuses so 'status --cached' reflects them
func recordRows(ctx context.Context, cli *CLI, rows []statusRow) {
	for _, row := range rows {
		if row.Status == nil {
			continue
		}
		if err := cli.Container.StatusStore.SaveStatus(ctx, row.Session, *row.Status); err != nil {
			logging.Logger.Warn("Failed to record status", "session", row.Session, "error", err)
		}
	}
}
