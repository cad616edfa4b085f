package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/theme"
)

// StatusCmd refreshes and prints git status for sessions
type StatusCmd struct {
	Cached   bool     `help:"Print the statuses last recorded by 'gitsync watch' without inspecting"`
	Format   string   `help:"Output format: table or json" enum:"table,json" default:"table"`
	Sessions []string `arg:"" optional:"" help:"Sessions to inspect (default: every active session)"`
}

type statusRow struct {
	Session string            `json:"session"`
	Status  *domain.GitStatus `json:"status"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	ctx := context.Background()

	rows, err := s.collect(ctx, cli)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		return printJSON(rows)
	}
	printStatusTable(rows)
	return nil
}

func (s *StatusCmd) collect(ctx context.Context, cli *CLI) ([]statusRow, error) {
	if s.Cached {
		return s.cached(ctx, cli)
	}

	engine := cli.Container.Engine
	if len(s.Sessions) == 0 {
		summary := engine.RefreshAll(ctx)
		if summary.Failed > 0 {
			fmt.Fprintf(os.Stderr, "%s\n", theme.ErrorStyle.Render(
				fmt.Sprintf("%d of %d sessions could not be inspected", summary.Failed, summary.Total)))
		}
		return rowsFromMap(engine.Snapshot(), nil), nil
	}

	rows := make([]statusRow, 0, len(s.Sessions))
	for _, name := range s.Sessions {
		status := engine.GetStatus(ctx, name)
		if status == nil {
			logging.Logger.Info("Session has nothing to inspect", "session", name)
		}
		rows = append(rows, statusRow{Session: name, Status: status})
	}
	return rows, nil
}

func (s *StatusCmd) cached(ctx context.Context, cli *CLI) ([]statusRow, error) {
	statuses, err := cli.Container.StatusStore.LoadStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recorded statuses: %w", err)
	}
	return rowsFromMap(statuses, s.Sessions), nil
}

// rowsFromMap orders statuses by session name. When only is set, it
// selects and orders rows by it instead; missing sessions get a nil status.
func rowsFromMap(statuses map[string]domain.GitStatus, only []string) []statusRow {
	if len(only) > 0 {
		rows := make([]statusRow, 0, len(only))
		for _, name := range only {
			row := statusRow{Session: name}
			if status, ok := statuses[name]; ok {
				row.Status = &status
			}
			rows = append(rows, row)
		}
		return rows
	}

	rows := make([]statusRow, 0, len(statuses))
	for name, status := range statuses {
		rows = append(rows, statusRow{Session: name, Status: &status})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Session < rows[j].Session })
	return rows
}

func printStatusTable(rows []statusRow) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header("SESSION", "STATE", "DETAILS", "CHECKED"))
	for _, row := range rows {
		if row.Status == nil {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				theme.SessionStyle.Render(row.Session), "-", "no worktree to inspect", "-")
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			theme.SessionStyle.Render(row.Session),
			theme.RenderState(row.Status.State),
			theme.RenderDetails(row.Status),
			row.Status.LastChecked.Local().Format(time.DateTime))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d sessions\n", len(rows))
}
