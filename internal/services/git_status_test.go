package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wolverin0/crystal-fork-sub001/internal/clock"
	"github.com/wolverin0/crystal-fork-sub001/internal/config"
	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	portsmocks "github.com/wolverin0/crystal-fork-sub001/internal/ports/mocks"
)

type engineFixture struct {
	clock     *clock.FakeClock
	inspector *portsmocks.MockRepositoryInspector
	projects  *portsmocks.MockProjectDirectory
	recorder  *eventRecorder
	service   *GitStatusService
	sessions  *portsmocks.MockSessionDirectory
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	f := &engineFixture{
		clock:     clock.Fake(time.Unix(1000, 0)),
		inspector: portsmocks.NewMockRepositoryInspector(t),
		projects:  portsmocks.NewMockProjectDirectory(t),
		recorder:  &eventRecorder{},
		sessions:  portsmocks.NewMockSessionDirectory(t),
	}
	f.service = NewGitStatusService(config.DefaultSyncConfig(), f.clock, f.sessions, f.projects, f.inspector)
	f.service.SubscribeAll(f.recorder.record)
	t.Cleanup(f.service.Close)
	return f
}

func (f *engineFixture) resolves(sessionID, path string) {
	f.sessions.EXPECT().Resolve(mock.Anything, sessionID).
		Return(&domain.SessionLocation{ProjectID: "p1", WorktreePath: path}, nil).Maybe()
	f.projects.EXPECT().MainBranch(mock.Anything, "p1").Return("main", nil).Maybe()
}

// expectInspection sets up one full inspection of a worktree that is
// ahead by one commit
func (f *engineFixture) expectInspection(path string, times int) {
	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, path).Return(domain.WorkingDirectoryProbe{}, nil).Times(times)
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, path).Return(false, nil).Times(times)
	f.inspector.EXPECT().AheadBehind(mock.Anything, path, "main").Return(domain.AheadBehind{Ahead: 1}, nil).Times(times)
	f.inspector.EXPECT().CommitShortstat(mock.Anything, path, "main").
		Return(domain.DiffStats{Additions: 4, Deletions: 1, FilesChanged: 2}, nil).Times(times)
	f.inspector.EXPECT().CommitCount(mock.Anything, path, "main").Return(1, nil).Times(times)
}

func TestGetStatus_ServesFromCacheWithinTTL(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.expectInspection("/wt/s1", 2)

	first := f.service.GetStatus(context.Background(), "s1")
	require.NotNil(t, first)
	assert.Equal(t, domain.GitStateAhead, first.State)
	assert.True(t, first.IsReadyToMerge)
	assert.Equal(t, 4, first.CommitAdditions)

	f.clock.Advance(9 * time.Second)
	cached := f.service.GetStatus(context.Background(), "s1")
	require.NotNil(t, cached)
	f.inspector.AssertNumberOfCalls(t, "AheadBehind", 1)

	f.clock.Advance(time.Second)
	f.service.GetStatus(context.Background(), "s1")
	f.inspector.AssertNumberOfCalls(t, "AheadBehind", 2)
}

func TestGetStatus_EmitsUpdateOnlyWhenChanged(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.expectInspection("/wt/s1", 2)

	f.service.GetStatus(context.Background(), "s1")
	f.service.Flush()
	assert.Len(t, f.recorder.ofKind(domain.EventUpdated), 1)

	f.clock.Advance(11 * time.Second)
	f.service.GetStatus(context.Background(), "s1")
	f.service.Flush()
	assert.Len(t, f.recorder.ofKind(domain.EventUpdated), 1, "identical status is not re-emitted")
}

func TestGetStatus_MissingSessionReturnsNil(t *testing.T) {
	f := newEngineFixture(t)
	f.sessions.EXPECT().Resolve(mock.Anything, "gone").Return(nil, fmt.Errorf("lookup: %w", domain.ErrSessionNotFound))

	assert.Nil(t, f.service.GetStatus(context.Background(), "gone"))
	f.service.Flush()
	assert.Empty(t, f.recorder.all())
	assert.Empty(t, f.service.Snapshot())
}

func TestGetStatus_ProbeFailureYieldsUnknown(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/s1").
		Return(domain.WorkingDirectoryProbe{}, errors.New("fatal: not a git repository"))
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, "/wt/s1").Return(false, nil).Maybe()
	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/s1", "main").Return(domain.AheadBehind{}, nil).Maybe()

	status := f.service.GetStatus(context.Background(), "s1")
	require.NotNil(t, status)
	assert.Equal(t, domain.GitStateUnknown, status.State)
	assert.Equal(t, f.clock.Now(), status.LastChecked)

	f.service.Flush()
	ev, ok := f.recorder.lastUpdate("s1")
	require.True(t, ok)
	assert.Equal(t, domain.GitStateUnknown, ev.Status.State)
}

func TestGetStatus_MainBranchFailureYieldsUnknown(t *testing.T) {
	f := newEngineFixture(t)
	f.sessions.EXPECT().Resolve(mock.Anything, "s1").
		Return(&domain.SessionLocation{ProjectID: "p9", WorktreePath: "/wt/s1"}, nil)
	f.projects.EXPECT().MainBranch(mock.Anything, "p9").Return("", errors.New("no branch"))

	status := f.service.GetStatus(context.Background(), "s1")
	require.NotNil(t, status)
	assert.Equal(t, domain.GitStateUnknown, status.State)
}

func TestRefresh_DebounceCoalescesIntoOneInspection(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.expectInspection("/wt/s1", 1)

	for _i := 0; _i < 5; _i++ {
		f.service.Refresh("s1", false)
		f.clock.Advance(time.Second)
	}

	loading := f.recorder.ofKind(domain.EventLoading)
	require.NotEmpty(t, loading, "loading is emitted immediately")
	f.inspector.AssertNotCalled(t, "ProbeWorkingDirectory", mock.Anything, mock.Anything)

	f.clock.Advance(4 * time.Second)
	f.clock.Advance(200 * time.Millisecond)

	f.inspector.AssertNumberOfCalls(t, "ProbeWorkingDirectory", 1)
	ev, ok := f.recorder.lastUpdate("s1")
	require.True(t, ok)
	assert.Equal(t, domain.GitStateAhead, ev.Status.State)
}

func TestRefresh_CheapPreCheckSkipsFullInspection(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.expectInspection("/wt/s1", 1)
	f.service.GetStatus(context.Background(), "s1")

	// pre-check: probe, rebase and ahead/behind only
	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/s1").Return(domain.WorkingDirectoryProbe{}, nil).Once()
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, "/wt/s1").Return(false, nil).Once()
	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/s1", "main").Return(domain.AheadBehind{Ahead: 1}, nil).Once()

	f.clock.Advance(30 * time.Second)
	f.service.Refresh("s1", true)
	f.clock.Advance(5 * time.Second)
	f.clock.Advance(200 * time.Millisecond)

	f.inspector.AssertNumberOfCalls(t, "IsRebaseInProgress", 2)
	f.inspector.AssertNumberOfCalls(t, "CommitShortstat", 1)

	ev, ok := f.recorder.lastUpdate("s1")
	require.True(t, ok)
	require.NotNil(t, ev.Status, "cached value is re-emitted to clear loading")
	assert.Equal(t, f.clock.Now().Add(-200*time.Millisecond), ev.Status.LastChecked)

	_, fresh := f.service.cache.Fresh("s1")
	assert.True(t, fresh, "pre-check restamps the cache")
}

func TestRefresh_PreCheckDetectsChange(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.expectInspection("/wt/s1", 1)
	f.service.GetStatus(context.Background(), "s1")

	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/s1").
		Return(domain.WorkingDirectoryProbe{HasModified: true}, nil).Times(2)
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, "/wt/s1").Return(false, nil).Once()
	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/s1", "main").Return(domain.AheadBehind{Ahead: 1}, nil).Once()
	f.inspector.EXPECT().DiffStats(mock.Anything, "/wt/s1").Return(domain.DiffStats{Additions: 2, FilesChanged: 1}, nil).Once()
	f.inspector.EXPECT().CommitShortstat(mock.Anything, "/wt/s1", "main").Return(domain.DiffStats{Additions: 4}, nil).Once()
	f.inspector.EXPECT().CommitCount(mock.Anything, "/wt/s1", "main").Return(1, nil).Once()

	f.service.Refresh("s1", false)
	f.clock.Advance(5 * time.Second)
	f.clock.Advance(200 * time.Millisecond)

	ev, ok := f.recorder.lastUpdate("s1")
	require.True(t, ok)
	assert.Equal(t, domain.GitStateModified, ev.Status.State)
	assert.Equal(t, 2, ev.Status.Additions)
}

func TestRefresh_PreCheckSeesRebaseInProgress(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.expectInspection("/wt/s1", 1)
	f.service.GetStatus(context.Background(), "s1")

	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/s1").Return(domain.WorkingDirectoryProbe{}, nil).Times(2)
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, "/wt/s1").Return(true, nil).Times(2)
	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/s1", "main").Return(domain.AheadBehind{Ahead: 1}, nil).Once()
	f.inspector.EXPECT().CommitShortstat(mock.Anything, "/wt/s1", "main").Return(domain.DiffStats{Additions: 4}, nil).Once()
	f.inspector.EXPECT().CommitCount(mock.Anything, "/wt/s1", "main").Return(1, nil).Once()

	f.service.Refresh("s1", false)
	f.clock.Advance(5 * time.Second)
	f.clock.Advance(200 * time.Millisecond)

	f.inspector.AssertNumberOfCalls(t, "AheadBehind", 2)
	ev, ok := f.recorder.lastUpdate("s1")
	require.True(t, ok)
	assert.Equal(t, domain.GitStateConflict, ev.Status.State)
}

func TestRefresh_SupersededPreCheckStillClearsLoading(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/s1").
		RunAndReturn(func(context.Context, string) (domain.WorkingDirectoryProbe, error) {
			if calls.Add(1) == 2 {
				close(started)
				<-release
			}
			return domain.WorkingDirectoryProbe{}, nil
		})
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, "/wt/s1").Return(false, nil)
	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/s1", "main").Return(domain.AheadBehind{Ahead: 1}, nil)
	f.inspector.EXPECT().CommitShortstat(mock.Anything, "/wt/s1", "main").
		Return(domain.DiffStats{Additions: 4, Deletions: 1, FilesChanged: 2}, nil)
	f.inspector.EXPECT().CommitCount(mock.Anything, "/wt/s1", "main").Return(1, nil)

	require.NotNil(t, f.service.GetStatus(context.Background(), "s1"))
	f.clock.Advance(11 * time.Second)

	f.service.Refresh("s1", false)
	advanced := make(chan struct{})
	go func() {
		defer close(advanced)
		f.clock.Advance(5 * time.Second)
	}()

	<-started
	// a direct read supersedes the pending pre-check with an identical status
	require.NotNil(t, f.service.GetStatus(context.Background(), "s1"))
	close(release)
	<-advanced
	f.service.Flush()

	last := f.recorder.lastFor("s1")
	require.IsType(t, domain.UpdatedEvent{}, last, "loading indicator is cleared")
	require.NotNil(t, last.(domain.UpdatedEvent).Status)
	assert.Equal(t, domain.GitStateAhead, last.(domain.UpdatedEvent).Status.State)
}

func TestRefresh_InvalidatedDuringPreCheckPostsNil(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.expectInspection("/wt/s1", 1)
	f.service.GetStatus(context.Background(), "s1")

	started := make(chan struct{})
	release := make(chan struct{})
	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/s1").Return(domain.WorkingDirectoryProbe{}, nil).Once()
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, "/wt/s1").Return(false, nil).Once()
	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/s1", "main").
		RunAndReturn(func(context.Context, string, string) (domain.AheadBehind, error) {
			close(started)
			<-release
			return domain.AheadBehind{Ahead: 1}, nil
		}).Once()

	f.service.Refresh("s1", false)
	advanced := make(chan struct{})
	go func() {
		defer close(advanced)
		f.clock.Advance(5 * time.Second)
	}()

	<-started
	f.service.Invalidate("s1")
	close(release)
	<-advanced
	f.service.Flush()

	ev, ok := f.recorder.lastUpdate("s1")
	require.True(t, ok)
	assert.Nil(t, ev.Status, "no zero-value status is published")
}

func TestRefresh_MissingSessionClearsLoading(t *testing.T) {
	f := newEngineFixture(t)
	f.sessions.EXPECT().Resolve(mock.Anything, "s1").Return(nil, domain.ErrNoWorktree)

	f.service.Refresh("s1", false)
	f.clock.Advance(5 * time.Second)
	f.clock.Advance(200 * time.Millisecond)

	ev, ok := f.recorder.lastUpdate("s1")
	require.True(t, ok)
	assert.Nil(t, ev.Status)
}

func TestCancel_ClearsTimerAndLoading(t *testing.T) {
	f := newEngineFixture(t)

	f.service.Refresh("s1", false)
	f.service.Cancel("s1")
	f.clock.Advance(10 * time.Second)

	f.sessions.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	assert.Empty(t, f.recorder.ofKind(domain.EventLoading), "loading was replaced before the flush")
	ev, ok := f.recorder.lastUpdate("s1")
	require.True(t, ok)
	assert.Nil(t, ev.Status)
}

func TestCancel_DiscardsInFlightResult(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")

	started := make(chan struct{})
	release := make(chan struct{})
	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/s1").
		RunAndReturn(func(context.Context, string) (domain.WorkingDirectoryProbe, error) {
			close(started)
			<-release
			return domain.WorkingDirectoryProbe{}, nil
		}).Once()
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, "/wt/s1").Return(false, nil).Once()
	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/s1", "main").Return(domain.AheadBehind{}, nil).Once()

	done := make(chan *domain.GitStatus)
	go func() { done <- f.service.GetStatus(context.Background(), "s1") }()

	<-started
	f.service.CancelMany([]string{"s1"})
	close(release)

	status := <-done
	require.NotNil(t, status)
	assert.Empty(t, f.service.Snapshot(), "superseded result is not cached")
}

func TestApplyKnownTransition_ToMainFastPath(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.service.cache.Put("s1", domain.DeriveGitStatus(domain.StatusInputs{
		Ahead: 2, Behind: 3, Uncommitted: true, TotalCommits: 2,
	}, f.clock.Now()))

	status := f.service.ApplyKnownTransition(context.Background(), "s1", domain.TransitionToMain)
	require.NotNil(t, status)

	assert.Zero(t, status.Behind)
	assert.Equal(t, domain.GitStateAhead, status.State)
	assert.False(t, status.HasUncommittedChanges)
	f.inspector.AssertNotCalled(t, "AheadBehind", mock.Anything, mock.Anything, mock.Anything)

	f.service.Flush()
	ev, ok := f.recorder.lastUpdate("s1")
	require.True(t, ok)
	assert.Equal(t, domain.GitStateAhead, ev.Status.State)
}

func TestApplyKnownTransition_FallsBackWithoutCache(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.expectInspection("/wt/s1", 1)

	status := f.service.ApplyKnownTransition(context.Background(), "s1", domain.TransitionFromMain)
	require.NotNil(t, status)
	assert.Equal(t, domain.GitStateAhead, status.State)
}

func TestApplyKnownTransition_FallsBackOnProbeFailure(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.service.cache.Put("s1", domain.GitStatus{State: domain.GitStateBehind, Behind: 2})

	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/s1").
		Return(domain.WorkingDirectoryProbe{}, errors.New("index.lock exists")).Once()
	f.expectInspection("/wt/s1", 1)

	status := f.service.ApplyKnownTransition(context.Background(), "s1", domain.TransitionFromMain)
	require.NotNil(t, status)
	assert.Equal(t, domain.GitStateAhead, status.State, "result comes from the full inspection")
}

func TestApplyKnownTransition_UnknownEntryRunsFullInspection(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.service.cache.Put("s1", domain.UnknownGitStatus(f.clock.Now()))
	f.expectInspection("/wt/s1", 1)

	status := f.service.ApplyKnownTransition(context.Background(), "s1", domain.TransitionFromMain)
	require.NotNil(t, status)

	assert.Equal(t, domain.GitStateAhead, status.State)
	assert.Equal(t, 1, status.Ahead, "ahead count comes from the inspection, not the unknown entry")
	f.inspector.AssertNumberOfCalls(t, "ProbeWorkingDirectory", 1)
}

func TestNotifyMainBranchUpdated(t *testing.T) {
	f := newEngineFixture(t)
	f.sessions.EXPECT().ListSessions(mock.Anything, false).Return([]domain.Session{
		{Name: "pusher", ProjectID: "p1", State: domain.StateActive},
		{Name: "behind", ProjectID: "p1", State: domain.StateActive},
		{Name: "uncached", ProjectID: "p1", State: domain.StateActive},
		{Name: "broken", ProjectID: "p1", State: domain.StateError},
		{Name: "elsewhere", ProjectID: "p2", State: domain.StateActive},
	}, nil)
	f.resolves("pusher", "/wt/pusher")
	f.resolves("behind", "/wt/behind")

	f.service.cache.Put("pusher", domain.DeriveGitStatus(domain.StatusInputs{Ahead: 2, Behind: 1, TotalCommits: 2}, f.clock.Now()))
	f.service.cache.Put("behind", domain.DeriveGitStatus(domain.StatusInputs{Behind: 1}, f.clock.Now()))

	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/behind", "main").Return(domain.AheadBehind{Behind: 3}, nil).Once()

	summary := f.service.NotifyMainBranchUpdated(context.Background(), "p1", "pusher")
	assert.Equal(t, domain.RefreshSummary{Total: 3, Refreshed: 3}, summary)

	snapshot := f.service.Snapshot()
	assert.Equal(t, domain.GitStateAhead, snapshot["pusher"].State)
	assert.Zero(t, snapshot["pusher"].Behind)
	assert.Equal(t, 3, snapshot["behind"].Behind)
	assert.Equal(t, domain.GitStateBehind, snapshot["behind"].State)

	assert.True(t, f.service.debouncer.Pending("uncached"), "sessions without a cached status fall back to refresh")
	assert.False(t, f.service.debouncer.Pending("broken"))
	assert.False(t, f.service.debouncer.Pending("elsewhere"))
}

func TestNotifyMainBranchUpdated_AheadChangeRefetchesCommitStats(t *testing.T) {
	f := newEngineFixture(t)
	f.sessions.EXPECT().ListSessions(mock.Anything, false).Return([]domain.Session{
		{Name: "s1", ProjectID: "p1", State: domain.StateActive},
	}, nil)
	f.resolves("s1", "/wt/s1")
	f.service.cache.Put("s1", domain.DeriveGitStatus(domain.StatusInputs{Ahead: 1, TotalCommits: 1}, f.clock.Now()))

	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/s1", "main").Return(domain.AheadBehind{Ahead: 3}, nil)
	f.inspector.EXPECT().CommitShortstat(mock.Anything, "/wt/s1", "main").Return(domain.DiffStats{Additions: 9}, nil)
	f.inspector.EXPECT().CommitCount(mock.Anything, "/wt/s1", "main").Return(3, nil)

	f.service.NotifyMainBranchUpdated(context.Background(), "p1", "")

	status := f.service.Snapshot()["s1"]
	assert.Equal(t, 3, status.Ahead)
	assert.Equal(t, 3, status.TotalCommits)
	assert.Equal(t, 9, status.CommitAdditions)
}

func TestNotifyMainBranchUpdated_ErrorFallsBackToRefresh(t *testing.T) {
	f := newEngineFixture(t)
	f.sessions.EXPECT().ListSessions(mock.Anything, false).Return([]domain.Session{
		{Name: "s1", ProjectID: "p1", State: domain.StateActive},
	}, nil)
	f.resolves("s1", "/wt/s1")
	f.service.cache.Put("s1", domain.GitStatus{State: domain.GitStateClean})
	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/s1", "main").Return(domain.AheadBehind{}, errors.New("bad object"))

	summary := f.service.NotifyMainBranchUpdated(context.Background(), "p1", "")
	assert.Equal(t, 1, summary.Failed)
	assert.True(t, f.service.debouncer.Pending("s1"))
}

func TestNotifyMainBranchUpdated_UnknownEntryFallsBackToRefresh(t *testing.T) {
	f := newEngineFixture(t)
	f.sessions.EXPECT().ListSessions(mock.Anything, false).Return([]domain.Session{
		{Name: "s1", ProjectID: "p1", State: domain.StateActive},
	}, nil)
	f.service.cache.Put("s1", domain.UnknownGitStatus(f.clock.Now()))

	summary := f.service.NotifyMainBranchUpdated(context.Background(), "p1", "")

	assert.Equal(t, domain.RefreshSummary{Total: 1, Refreshed: 1}, summary)
	f.inspector.AssertNotCalled(t, "AheadBehind", mock.Anything, mock.Anything, mock.Anything)
	assert.True(t, f.service.debouncer.Pending("s1"))
	assert.Equal(t, domain.GitStateUnknown, f.service.Snapshot()["s1"].State, "no derived state is written")
}

func TestRefreshAll_ToleratesPartialFailure(t *testing.T) {
	f := newEngineFixture(t)
	f.sessions.EXPECT().ListSessions(mock.Anything, false).Return([]domain.Session{
		{Name: "ok", ProjectID: "p1", State: domain.StateActive},
		{Name: "bad", ProjectID: "p1", State: domain.StateActive},
		{Name: "nowt", ProjectID: "p1", State: domain.StateActive},
		{Name: "archived", ProjectID: "p1", State: domain.StateActive, IsArchived: true},
	}, nil)
	f.resolves("ok", "/wt/ok")
	f.resolves("bad", "/wt/bad")
	f.sessions.EXPECT().Resolve(mock.Anything, "nowt").Return(nil, domain.ErrNoWorktree)

	f.expectInspection("/wt/ok", 1)
	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/bad").Return(domain.WorkingDirectoryProbe{}, errors.New("boom"))
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, "/wt/bad").Return(false, nil).Maybe()
	f.inspector.EXPECT().AheadBehind(mock.Anything, "/wt/bad", "main").Return(domain.AheadBehind{}, nil).Maybe()

	summary := f.service.RefreshAll(context.Background())
	assert.Equal(t, domain.RefreshSummary{Total: 3, Refreshed: 1, Failed: 2}, summary)

	f.service.Flush()
	batches := f.recorder.ofKind(domain.EventUpdatedBatch)
	require.Len(t, batches, 1)
	assert.Len(t, batches[0].(domain.UpdatedBatchEvent).Updates, 3, "every loading indicator is cleared")
	assert.Equal(t, domain.GitStateUnknown, f.service.Snapshot()["bad"].State)
}

func TestRefreshAll_RespectsConcurrencyLimit(t *testing.T) {
	f := newEngineFixture(t)

	var sessions []domain.Session
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("s%d", i)
		sessions = append(sessions, domain.Session{Name: name, ProjectID: "p1", State: domain.StateActive})
		f.resolves(name, "/wt/"+name)
	}
	f.sessions.EXPECT().ListSessions(mock.Anything, false).Return(sessions, nil)

	var running, peak atomic.Int32
	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string) (domain.WorkingDirectoryProbe, error) {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			return domain.WorkingDirectoryProbe{}, nil
		})
	f.inspector.EXPECT().IsRebaseInProgress(mock.Anything, mock.Anything).Return(false, nil)
	f.inspector.EXPECT().AheadBehind(mock.Anything, mock.Anything, "main").Return(domain.AheadBehind{}, nil)

	summary := f.service.RefreshAll(context.Background())
	assert.Equal(t, 8, summary.Refreshed)
	assert.LessOrEqual(t, int(peak.Load()), 2)
	assert.LessOrEqual(t, f.service.limiter.Peak(), 2)
}

func TestGetStatusNonBlocking_QueuesColdStart(t *testing.T) {
	f := newEngineFixture(t)
	f.resolves("s1", "/wt/s1")
	f.expectInspection("/wt/s1", 1)

	assert.Nil(t, f.service.GetStatusNonBlocking("s1"))

	require.Eventually(t, func() bool {
		f.service.Flush()
		_, ok := f.recorder.lastUpdate("s1")
		return ok
	}, time.Second, time.Millisecond)

	ev, _ := f.recorder.lastUpdate("s1")
	require.NotNil(t, ev.Status)
	assert.Equal(t, domain.GitStateAhead, ev.Status.State)
	assert.NotEmpty(t, f.recorder.ofKind(domain.EventLoading))

	status := f.service.GetStatusNonBlocking("s1")
	require.NotNil(t, status, "fresh cache is served without queueing")
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	f := newEngineFixture(t)
	var count atomic.Int32
	unsubscribe := f.service.Subscribe(domain.EventLoadingBatch, func(domain.StatusEvent) { count.Add(1) })

	f.service.Refresh("s1", false)
	f.service.Flush()
	assert.Equal(t, int32(1), count.Load())

	unsubscribe()
	f.service.Refresh("s2", false)
	f.service.Flush()
	assert.Equal(t, int32(1), count.Load())
}

func TestSeed_OnlyFillsEmptyEntries(t *testing.T) {
	f := newEngineFixture(t)
	recorded := domain.DeriveGitStatus(domain.StatusInputs{Ahead: 2, Behind: 1, TotalCommits: 2}, f.clock.Now())

	assert.False(t, f.service.Seed("s1", domain.UnknownGitStatus(f.clock.Now())), "unknown is never a base")
	assert.True(t, f.service.Seed("s1", recorded))
	assert.False(t, f.service.Seed("s1", domain.GitStatus{State: domain.GitStateClean}), "cached entry wins")

	f.service.Flush()
	assert.Empty(t, f.recorder.all())
	assert.Equal(t, domain.GitStateDiverged, f.service.Snapshot()["s1"].State)

	f.resolves("s1", "/wt/s1")
	f.inspector.EXPECT().ProbeWorkingDirectory(mock.Anything, "/wt/s1").Return(domain.WorkingDirectoryProbe{}, nil).Once()

	status := f.service.ApplyKnownTransition(context.Background(), "s1", domain.TransitionFromMain)
	require.NotNil(t, status)
	assert.Equal(t, 2, status.Ahead)
	assert.Zero(t, status.Behind)
	assert.Equal(t, domain.GitStateAhead, status.State)
}
