package cmd

import (
	"context"
	"errors"

	adaptergit "github.com/wolverin0/crystal-fork-sub001/internal/adapters/git"
	adapterstorage "github.com/wolverin0/crystal-fork-sub001/internal/adapters/storage"
	adapterwatcher "github.com/wolverin0/crystal-fork-sub001/internal/adapters/watcher"
	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
	"github.com/wolverin0/crystal-fork-sub001/internal/config"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
	"github.com/wolverin0/crystal-fork-sub001/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	Engine         *services.GitStatusService
	MainBranches   *services.MainBranchResolver
	ProjectService *services.ProjectService
	RefRouter      *services.RefRouter
	SessionService *services.SessionService
	StatusStore    ports.StatusStore

	// Internal
	cfg       config.SyncConfig
	clock     clock.Clock
	inspector *adaptergit.CLIInspector
	notifier  ports.ChangeNotifier
	repo      *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg config.SyncConfig) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	clk := clock.Real()
	inspector := adaptergit.NewCLIInspector()
	mainBranches := services.NewMainBranchResolver(repo, inspector)
	engine := services.NewGitStatusService(cfg, clk, repo, mainBranches, inspector)

	return &Container{
		Engine:         engine,
		MainBranches:   mainBranches,
		ProjectService: services.NewProjectService(repo, repo, inspector, inspector),
		RefRouter:      services.NewRefRouter(engine, mainBranches, repo, repo, inspector),
		SessionService: services.NewSessionService(repo, repo, engine, nil),
		StatusStore:    repo,
		cfg:            cfg,
		clock:          clk,
		inspector:      inspector,
		repo:           repo,
	}, nil
}

// EnableWatching starts the filesystem watcher and routes its signals
// into the engine. SessionService is rebuilt so lifecycle changes keep
// the watch set in step.
func (c *Container) EnableWatching(ctx context.Context) error {
	if c.notifier != nil {
		return nil
	}

	notifier, err := adapterwatcher.New(adapterwatcher.Options{
		Clock:    c.clock,
		Debounce: c.cfg.WatchDebounce,
		Ignore:   c.cfg.WatchIgnore,
		OnChange: func(sessionID string) {
			c.Engine.Refresh(sessionID, false)
		},
		OnRefChanged: func(projectID, branch string) {
			c.RefRouter.HandleRefChange(ctx, projectID, branch)
		},
	})
	if err != nil {
		return err
	}

	c.notifier = notifier
	c.SessionService = services.NewSessionService(c.repo, c.repo, c.Engine, notifier)
	logging.Logger.Info("Filesystem watching enabled",
		"debounce", c.cfg.WatchDebounce,
		"ignore", c.cfg.WatchIgnore)
	return nil
}

// Close closes all resources held by the container. The watcher stops
// first so no new work reaches the engine while it drains.
func (c *Container) Close() error {
	var errs []error
	if c.notifier != nil {
		errs = append(errs, c.notifier.Close())
	}
	c.Engine.Close()
	if c.repo != nil {
		errs = append(errs, c.repo.Close())
	}
	return errors.Join(errs...)
}
