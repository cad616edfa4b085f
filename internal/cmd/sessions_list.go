package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/theme"
)

// SessionsListCmd lists all sessions
type SessionsListCmd struct {
	Format       string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ShowArchived bool   `help:"Show archived sessions" short:"a" name:"all"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	sessions, err := cli.Container.SessionService.ListSessions(ctx, s.ShowArchived)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		return printJSON(sessions)
	}

	projectNames := make(map[string]string)
	if projects, err := cli.Container.ProjectService.ListProjects(ctx); err == nil {
		for _, p := range projects {
			projectNames[p.ID] = p.Name
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header("NAME", "PROJECT", "STATE", "ARCHIVED", "WORKTREE"))
	for _, sess := range sessions {
		archived := ""
		if sess.IsArchived {
			archived = "✓"
		}
		worktree := sess.WorktreePath
		if worktree == "" {
			worktree = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			theme.SessionStyle.Render(sess.Name),
			projectNames[sess.ProjectID],
			sessionState(sess),
			archived,
			worktree)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d sessions\n", len(sessions))
	return nil
}

func sessionState(sess domain.Session) string {
	if sess.State == "" {
		return string(domain.StateActive)
	}
	return string(sess.State)
}
