package cmd

import (
	"context"
	"fmt"

	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/services"
)

// SessionsAddCmd adds a new session
type SessionsAddCmd struct {
	Name     string `arg:"" help:"Name of the session to add"`
	Project  string `help:"Project ID or name" required:"" short:"p"`
	Worktree string `help:"Worktree path (empty registers a session with nothing to inspect)" default:"" type:"path"`
}

// Run executes the add command
func (s *SessionsAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions add command", "session", s.Name, "project", s.Project)

	session, err := cli.Container.SessionService.AddSession(context.Background(), services.AddSessionParams{
		Name:         s.Name,
		Project:      s.Project,
		WorktreePath: s.Worktree,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Session '%s' added successfully\n", session.Name)
	return nil
}

// SessionsImportCmd registers a project's worktrees as sessions
type SessionsImportCmd struct {
	DryRun  bool   `help:"Only list the worktrees that would be imported" short:"n"`
	Project string `arg:"" help:"Project ID or name"`
}

// Run executes the import command
func (s *SessionsImportCmd) Run(cli *CLI) error {
	ctx := context.Background()
	project, worktrees, err := cli.Container.ProjectService.DiscoverWorktrees(ctx, s.Project)
	if err != nil {
		return fmt.Errorf("failed to discover worktrees: %w", err)
	}

	if len(worktrees) == 0 {
		fmt.Printf("No new worktrees in project '%s'\n", project.Name)
		return nil
	}

	if s.DryRun {
		for _, wt := range worktrees {
			fmt.Printf("%s\t%s\n", wt.Branch, wt.Path)
		}
		return nil
	}

	imported, err := cli.Container.SessionService.ImportWorktrees(ctx, project, worktrees)
	for _, sess := range imported {
		fmt.Printf("Session '%s' added for %s\n", sess.Name, sess.WorktreePath)
	}
	if err != nil {
		return fmt.Errorf("import stopped after %d sessions: %w", len(imported), err)
	}

	fmt.Printf("\nImported %d of %d worktrees\n", len(imported), len(worktrees))
	return nil
}
