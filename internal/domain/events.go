package domain

// EventKind identifies a status notification
type EventKind string

const (
	EventLoading      EventKind = "git-status-loading"
	EventLoadingBatch EventKind = "git-status-loading-batch"
	EventUpdated      EventKind = "git-status-updated"
	EventUpdatedBatch EventKind = "git-status-updated-batch"
)

// StatusEvent is implemented by every notification the engine publishes
type StatusEvent interface {
	Kind() EventKind
}

// LoadingEvent signals an inspection is pending for a session
type LoadingEvent struct {
	SessionID string
}

// UpdatedEvent carries a new status. A nil Status clears the loading
// indicator without reporting a status.
type UpdatedEvent struct {
	SessionID string
	Status    *GitStatus
}

// LoadingBatchEvent groups loading events flushed together
type LoadingBatchEvent struct {
	SessionIDs []string
}

// UpdatedBatchEvent groups updated events flushed together
type UpdatedBatchEvent struct {
	Updates []UpdatedEvent
}

func (LoadingEvent) Kind() EventKind      { return EventLoading }
func (UpdatedEvent) Kind() EventKind      { return EventUpdated }
func (LoadingBatchEvent) Kind() EventKind { return EventLoadingBatch }
func (UpdatedBatchEvent) Kind() EventKind { return EventUpdatedBatch }
