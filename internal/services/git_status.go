package services

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
	"github.com/wolverin0/crystal-fork-sub001/internal/config"
	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/events"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/ports"
)

// GitStatusService keeps the cached git status of every session fresh.
// It owns the cache, schedulers and event batching; callers observe
// results through Subscribe.
type GitStatusService struct {
	batcher     *EventBatcher
	bus         *events.Bus
	cache       *StatusCache
	cancel      context.CancelFunc
	cfg         config.SyncConfig
	clock       clock.Clock
	closed      bool
	coldStart   *ColdStartQueue
	ctx         context.Context
	debouncer   *Debouncer
	flights     singleflight.Group
	generations map[string]uint64
	inspector   ports.RepositoryInspector
	limiter     *ConcurrencyLimiter
	mu          sync.Mutex
	projects    ports.ProjectDirectory
	sessions    ports.SessionDirectory
	transitions *TransitionUpdater
	wg          sync.WaitGroup
}

// NewGitStatusService wires the engine components
func NewGitStatusService(
	cfg config.SyncConfig,
	clk clock.Clock,
	sessions ports.SessionDirectory,
	projects ports.ProjectDirectory,
	inspector ports.RepositoryInspector,
) *GitStatusService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &GitStatusService{
		bus:         events.NewBus(),
		cancel:      cancel,
		cfg:         cfg,
		clock:       clk,
		ctx:         ctx,
		debouncer:   NewDebouncer(clk),
		generations: make(map[string]uint64),
		inspector:   inspector,
		limiter:     NewConcurrencyLimiter(cfg.MaxConcurrentOperations),
		projects:    projects,
		sessions:    sessions,
	}
	s.cache = NewStatusCache(clk, cfg.CacheTTL)
	s.batcher = NewEventBatcher(clk, cfg.BatchInterval, s.bus.Publish)
	s.transitions = NewTransitionUpdater(s.cache, clk, inspector)
	s.coldStart = NewColdStartQueue(clk, cfg.MaxConcurrentOperations, cfg.ColdStartStagger,
		s.batcher.PostLoading,
		func(ctx context.Context, key string) { s.load(ctx, key, "cold-start") },
	)
	return s
}

// Subscribe registers an observer for one event kind
func (s *GitStatusService) Subscribe(kind domain.EventKind, handler events.Handler) (unsubscribe func()) {
	return s.bus.Subscribe(kind, handler)
}

// SubscribeAll registers an observer for every event kind
func (s *GitStatusService) SubscribeAll(handler events.Handler) (unsubscribe func()) {
	return s.bus.SubscribeAll(handler)
}

// GetStatus returns the cached status when fresh, otherwise inspects the
// session directly. Returns nil when the session has nothing to inspect.
func (s *GitStatusService) GetStatus(ctx context.Context, sessionID string) *domain.GitStatus {
	if status, ok := s.cache.Fresh(sessionID); ok {
		return &status
	}

	ch := s.flights.DoChan(sessionID, func() (any, error) {
		status, ok := s.inspectAndStore(s.ctx, sessionID, false)
		if !ok {
			return (*domain.GitStatus)(nil), nil
		}
		return status, nil
	})

	select {
	case <-ctx.Done():
		logging.Logger.Debug("GetStatus abandoned", "session", sessionID, "error", ctx.Err())
		return nil
	case res := <-ch:
		return res.Val.(*domain.GitStatus)
	}
}

// GetStatusNonBlocking returns whatever is cached, possibly stale, and
// queues a staggered load when the entry is missing or stale
func (s *GitStatusService) GetStatusNonBlocking(sessionID string) *domain.GitStatus {
	entry, cached := s.cache.Get(sessionID)
	if _, fresh := s.cache.Fresh(sessionID); !fresh {
		s.coldStart.Enqueue(sessionID)
	}
	if !cached {
		return nil
	}
	return &entry.Status
}

// Refresh marks the session as loading and schedules an inspection after
// the debounce window. Repeated calls within the window coalesce.
func (s *GitStatusService) Refresh(sessionID string, userInitiated bool) {
	if s.isClosed() {
		return
	}
	source := "watcher"
	if userInitiated {
		source = "user"
	}
	logging.Logger.Debug("Refresh requested", "session", sessionID, "source", source)

	s.batcher.PostLoading(sessionID)
	s.debouncer.Schedule(sessionID, s.cfg.Debounce, func() {
		if !s.track() {
			return
		}
		defer s.wg.Done()
		s.runDebouncedRefresh(s.ctx, sessionID, source)
	})
}

func (s *GitStatusService) runDebouncedRefresh(ctx context.Context, sessionID, source string) {
	loc, ok := s.resolve(ctx, sessionID)
	if !ok {
		s.batcher.PostUpdated(sessionID, nil)
		return
	}
	gen := s.dispatch(sessionID)

	if entry, cached := s.cache.Get(sessionID); cached {
		var unchanged bool
		err := s.limiter.Run(ctx, func(ctx context.Context) error {
			branch, err := s.projects.MainBranch(ctx, loc.ProjectID)
			if err != nil {
				return err
			}
			pctx, cancel := context.WithTimeout(ctx, s.cfg.InspectorTimeout)
			defer cancel()
			unchanged, err = unchangedSince(pctx, s.inspector, loc.WorktreePath, branch, entry.Status)
			return err
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Logger.Debug("Pre-check failed, running full inspection", "session", sessionID, "error", err)
		}
		if err == nil && unchanged {
			if !s.isCurrent(sessionID, gen) {
				s.postCached(sessionID)
				return
			}
			status, ok := s.cache.Touch(sessionID)
			if !ok {
				s.batcher.PostUpdated(sessionID, nil)
				return
			}
			logging.Logger.Debug("Pre-check unchanged, skipping inspection", "session", sessionID, "source", source)
			s.batcher.PostUpdated(sessionID, &status)
			return
		}
	}

	s.inspectWithGeneration(ctx, sessionID, loc, gen, true)
}

// Cancel clears pending work for the session and its loading indicator.
// An inspection already running finishes but its result is discarded.
func (s *GitStatusService) Cancel(sessionID string) {
	s.mu.Lock()
	s.generations[sessionID]++
	s.mu.Unlock()

	s.debouncer.Cancel(sessionID)
	s.coldStart.Remove(sessionID)
	s.flights.Forget(sessionID)
	logging.Logger.Debug("Cancelled status work", "session", sessionID)
	s.postCached(sessionID)
}

// CancelMany cancels every given session
func (s *GitStatusService) CancelMany(sessionIDs []string) {
	for _, id := range sessionIDs {
		s.Cancel(id)
	}
}

// Invalidate drops the cached status of a session
func (s *GitStatusService) Invalidate(sessionID string) {
	s.cache.Invalidate(sessionID)
}

// ApplyKnownTransition updates the cached status from a known delta
// without a full inspection, falling back to one when the delta cannot
// be applied
func (s *GitStatusService) ApplyKnownTransition(ctx context.Context, sessionID string, kind domain.TransitionKind) *domain.GitStatus {
	loc, ok := s.resolve(ctx, sessionID)
	if !ok {
		return nil
	}
	gen := s.dispatch(sessionID)

	var status domain.GitStatus
	err := s.limiter.Run(ctx, func(ctx context.Context) error {
		tctx, cancel := context.WithTimeout(ctx, s.cfg.InspectorTimeout)
		defer cancel()
		var err error
		status, err = s.transitions.Derive(tctx, sessionID, loc.WorktreePath, kind)
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		logging.Logger.Info("Transition fast path unavailable, running full inspection",
			"session", sessionID, "transition", kind, "error", err)
		full, ok := s.inspectWithGeneration(ctx, sessionID, loc, gen, false)
		if !ok {
			return nil
		}
		return full
	}

	logging.Logger.Debug("Applied known transition", "session", sessionID, "transition", kind)
	s.store(sessionID, gen, status, false)
	return &status
}

// NotifyMainBranchUpdated reconciles every eligible session of a project
// after its main branch moved. The session that pushed to main gets the
// toMain transition; the others get a cheap ahead/behind delta.
func (s *GitStatusService) NotifyMainBranchUpdated(ctx context.Context, projectID, updatedBy string) domain.RefreshSummary {
	sessions, err := s.sessions.ListSessions(ctx, false)
	if err != nil {
		logging.Logger.Warn("Failed to list sessions for main branch update", "project", projectID, "error", err)
		return domain.RefreshSummary{}
	}

	var summary domain.RefreshSummary
	var mu sync.Mutex
	g := new(errgroup.Group)
	for _, sess := range sessions {
		sess := sess
		if sess.ProjectID != projectID || !sess.Eligible() {
			continue
		}
		summary.Total++
		g.Go(func() error {
			var ok bool
			if sess.Name == updatedBy {
				ok = s.ApplyKnownTransition(ctx, sess.Name, domain.TransitionToMain) != nil
			} else {
				ok = s.applyAheadBehindDelta(ctx, sess.Name)
			}
			mu.Lock()
			defer mu.Unlock()
			if ok {
				summary.Refreshed++
			} else {
				summary.Failed++
			}
			return nil
		})
	}
	_ = g.Wait()

	logging.Logger.Info("Main branch update processed",
		"project", projectID,
		"updated_by", updatedBy,
		"total", summary.Total,
		"failed", summary.Failed)
	return summary
}

// applyAheadBehindDelta recomputes only the divergence of a cached status.
// Anything unexpected falls back to a debounced refresh. An unknown entry
// holds no probed data to build on.
func (s *GitStatusService) applyAheadBehindDelta(ctx context.Context, sessionID string) bool {
	entry, cached := s.cache.Get(sessionID)
	if !cached || entry.Status.State == domain.GitStateUnknown {
		s.Refresh(sessionID, false)
		return true
	}
	loc, ok := s.resolve(ctx, sessionID)
	if !ok {
		return false
	}
	gen := s.dispatch(sessionID)

	in := inputsFromStatus(entry.Status)
	err := s.limiter.Run(ctx, func(ctx context.Context) error {
		branch, err := s.projects.MainBranch(ctx, loc.ProjectID)
		if err != nil {
			return err
		}
		pctx, cancel := context.WithTimeout(ctx, s.cfg.InspectorTimeout)
		defer cancel()

		ab, err := s.inspector.AheadBehind(pctx, loc.WorktreePath, branch)
		if err != nil {
			return err
		}
		aheadChanged := ab.Ahead != in.Ahead
		in.Ahead, in.Behind = ab.Ahead, ab.Behind

		switch {
		case in.Ahead == 0:
			in.CommitStats = domain.DiffStats{}
			in.TotalCommits = 0
		case aheadChanged:
			if in.CommitStats, err = s.inspector.CommitShortstat(pctx, loc.WorktreePath, branch); err != nil {
				return err
			}
			if in.TotalCommits, err = s.inspector.CommitCount(pctx, loc.WorktreePath, branch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		logging.Logger.Warn("Ahead/behind delta failed, refreshing", "session", sessionID, "error", err)
		s.Refresh(sessionID, false)
		return false
	}

	s.store(sessionID, gen, domain.DeriveGitStatus(in, s.clock.Now()), false)
	return true
}

// RefreshAll inspects every eligible session through the limiter. Individual
// failures are counted and do not stop the others.
func (s *GitStatusService) RefreshAll(ctx context.Context) domain.RefreshSummary {
	sessions, err := s.sessions.ListSessions(ctx, false)
	if err != nil {
		logging.Logger.Warn("Failed to list sessions for refresh", "error", err)
		return domain.RefreshSummary{}
	}

	var ids []string
	for _, sess := range sessions {
		if sess.Eligible() {
			ids = append(ids, sess.Name)
			s.batcher.PostLoading(sess.Name)
		}
	}

	summary := domain.RefreshSummary{Total: len(ids)}
	var mu sync.Mutex
	g := new(errgroup.Group)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			status := s.load(ctx, id, "refresh-all")
			mu.Lock()
			defer mu.Unlock()
			if status == nil || status.State == domain.GitStateUnknown {
				summary.Failed++
			} else {
				summary.Refreshed++
			}
			return nil
		})
	}
	_ = g.Wait()

	logging.Logger.Info("Refreshed all sessions",
		"total", summary.Total,
		"refreshed", summary.Refreshed,
		"failed", summary.Failed)
	return summary
}

// Seed caches a status recorded earlier, such as a persisted snapshot, so
// known transitions have a base to build on. It never replaces a cached
// entry, ignores unknown statuses and posts no event.
func (s *GitStatusService) Seed(sessionID string, status domain.GitStatus) bool {
	if status.State == domain.GitStateUnknown {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, cached := s.cache.Get(sessionID); cached {
		return false
	}
	s.cache.Put(sessionID, status)
	return true
}

// Snapshot returns every cached status
func (s *GitStatusService) Snapshot() map[string]domain.GitStatus {
	return s.cache.Snapshot()
}

// Flush publishes pending notifications immediately
func (s *GitStatusService) Flush() {
	s.batcher.Flush()
}

// Close stops timers and the cold start loop, waits for running refreshes,
// then flushes pending notifications
func (s *GitStatusService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.debouncer.CancelAll()
	s.cancel()
	s.coldStart.Close()
	s.wg.Wait()
	s.batcher.Flush()
}

// load performs an inspection whose loading indicator was already posted
func (s *GitStatusService) load(ctx context.Context, sessionID, source string) *domain.GitStatus {
	status, ok := s.inspectAndStore(ctx, sessionID, true)
	if !ok {
		logging.Logger.Debug("Nothing to load", "session", sessionID, "source", source)
		s.batcher.PostUpdated(sessionID, nil)
		return nil
	}
	return status
}

func (s *GitStatusService) inspectAndStore(ctx context.Context, sessionID string, clearLoading bool) (*domain.GitStatus, bool) {
	loc, ok := s.resolve(ctx, sessionID)
	if !ok {
		return nil, false
	}
	return s.inspectWithGeneration(ctx, sessionID, loc, s.dispatch(sessionID), clearLoading)
}

// inspectWithGeneration runs a full inspection inside the limiter. Probe
// failures produce an unknown status; only cancellation returns false.
func (s *GitStatusService) inspectWithGeneration(
	ctx context.Context,
	sessionID string,
	loc *domain.SessionLocation,
	gen uint64,
	clearLoading bool,
) (*domain.GitStatus, bool) {
	var status domain.GitStatus
	err := s.limiter.Run(ctx, func(ctx context.Context) error {
		branch, err := s.projects.MainBranch(ctx, loc.ProjectID)
		if err != nil {
			return err
		}
		ictx, cancel := context.WithTimeout(ctx, s.cfg.InspectorTimeout)
		defer cancel()
		status, err = inspectWorktree(ictx, s.inspector, loc.WorktreePath, branch, s.clock.Now())
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			logging.Logger.Debug("Inspection cancelled", "session", sessionID, "error", ctx.Err())
			return nil, false
		}
		logging.Logger.Warn("Git status inspection failed", "session", sessionID, "error", err)
		status = domain.UnknownGitStatus(s.clock.Now())
	}

	s.store(sessionID, gen, status, clearLoading)
	return &status, true
}

// store writes status if gen is still current and posts an update when the
// content changed, or always when a loading indicator must be cleared. A
// superseded result still clears loading with whatever is cached.
func (s *GitStatusService) store(sessionID string, gen uint64, status domain.GitStatus, clearLoading bool) bool {
	s.mu.Lock()
	if s.generations[sessionID] != gen {
		s.mu.Unlock()
		logging.Logger.Debug("Discarding superseded status", "session", sessionID, "generation", gen)
		if clearLoading {
			s.postCached(sessionID)
		}
		return false
	}
	changed := s.cache.Put(sessionID, status)
	s.mu.Unlock()

	if changed || clearLoading {
		s.batcher.PostUpdated(sessionID, &status)
	}
	return changed
}

// postCached re-emits the cached status, or nil when there is none, so a
// pending loading indicator is cleared
func (s *GitStatusService) postCached(sessionID string) {
	if entry, ok := s.cache.Get(sessionID); ok {
		s.batcher.PostUpdated(sessionID, &entry.Status)
		return
	}
	s.batcher.PostUpdated(sessionID, nil)
}

// dispatch starts a new generation for sessionID; results tagged with an
// older generation are discarded
func (s *GitStatusService) dispatch(sessionID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[sessionID]++
	return s.generations[sessionID]
}

func (s *GitStatusService) isCurrent(sessionID string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[sessionID] == gen
}

func (s *GitStatusService) resolve(ctx context.Context, sessionID string) (*domain.SessionLocation, bool) {
	loc, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrNoWorktree) {
			logging.Logger.Debug("Session has nothing to inspect", "session", sessionID, "error", err)
		} else {
			logging.Logger.Warn("Failed to resolve session", "session", sessionID, "error", err)
		}
		return nil, false
	}
	return loc, true
}

// track registers a background refresh unless the service is closing
func (s *GitStatusService) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

func (s *GitStatusService) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
