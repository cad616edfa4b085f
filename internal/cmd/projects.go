package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/services"
	"github.com/wolverin0/crystal-fork-sub001/internal/theme"
)

// ProjectsCmd manages projects
type ProjectsCmd struct {
	Add  ProjectsAddCmd  `cmd:"add" help:"Register a git repository as a project"`
	Del  ProjectsDelCmd  `cmd:"del" help:"Delete a project without sessions"`
	List ProjectsListCmd `cmd:"list" help:"List projects" default:"1"`
}

// ProjectsAddCmd registers a project
type ProjectsAddCmd struct {
	MainBranch string `help:"Branch sessions are compared against (detected when empty)" default:""`
	Name       string `help:"Project name (defaults to the repository directory name)" default:""`
	Path       string `arg:"" help:"Path to the repository or one of its worktrees" type:"path"`
}

// Run executes the add command
func (p *ProjectsAddCmd) Run(cli *CLI) error {
	project, err := cli.Container.ProjectService.AddProject(context.Background(), services.AddProjectParams{
		MainBranch: p.MainBranch,
		Name:       p.Name,
		Path:       p.Path,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Project '%s' added (%s)\n", project.Name, project.ID)
	return nil
}

// ProjectsListCmd lists projects
type ProjectsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (p *ProjectsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	projects, err := cli.Container.ProjectService.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if p.Format == "json" {
		return printJSON(projects)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header("NAME", "MAIN BRANCH", "PATH", "ID"))
	for _, project := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			theme.ProjectStyle.Render(project.Name),
			p.mainBranch(ctx, cli, project),
			project.Path,
			theme.MutedStyle.Render(project.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d projects\n", len(projects))
	return nil
}

func (p *ProjectsListCmd) mainBranch(ctx context.Context, cli *CLI, project domain.Project) string {
	if project.MainBranch != "" {
		return project.MainBranch
	}
	branch, err := cli.Container.MainBranches.MainBranch(ctx, project.ID)
	if err != nil {
		logging.Logger.Warn("Failed to resolve main branch", "project", project.ID, "error", err)
		return "?"
	}
	return branch + " (detected)"
}

// ProjectsDelCmd deletes a project
type ProjectsDelCmd struct {
	Project string `arg:"" help:"Project ID or name"`
}

// Run executes the del command
func (p *ProjectsDelCmd) Run(cli *CLI) error {
	if err := cli.Container.ProjectService.DeleteProject(context.Background(), p.Project); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	fmt.Printf("Project '%s' deleted\n", p.Project)
	return nil
}
