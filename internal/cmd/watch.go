package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
	"github.com/wolverin0/crystal-fork-sub001/internal/logging"
	"github.com/wolverin0/crystal-fork-sub001/internal/services"
	"github.com/wolverin0/crystal-fork-sub001/internal/theme"
)

// WatchCmd keeps every session's status fresh and prints changes
type WatchCmd struct {
	Format   string `help:"Output format: table or json (one object per line)" enum:"table,json" default:"table"`
	NoRecord bool   `help:"Do not persist statuses for 'gitsync status --cached'"`
}

// Run executes the watch command
func (c *WatchCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := cli.Container
	if err := container.EnableWatching(ctx); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	printer := &eventPrinter{json: c.Format == "json", out: os.Stdout}
	unsubLoading := container.Engine.Subscribe(domain.EventLoading, printer.handle)
	unsubUpdated := container.Engine.Subscribe(domain.EventUpdated, printer.handle)
	defer unsubLoading()
	defer unsubUpdated()

	var recorder *services.StatusRecorder
	if !c.NoRecord {
		recorder = services.NewStatusRecorder(container.Engine, container.StatusStore)
	}

	if err := container.SessionService.WatchAll(ctx); err != nil {
		return err
	}

	sessions, err := container.SessionService.ListSessions(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	queued := 0
	for _, sess := range sessions {
		if !sess.Eligible() {
			continue
		}
		if status := container.Engine.GetStatusNonBlocking(sess.Name); status != nil {
			printer.handle(domain.UpdatedEvent{SessionID: sess.Name, Status: status})
		}
		queued++
	}
	logging.Logger.Info("Watching sessions", "sessions", queued)
	if !printer.json {
		fmt.Fprintln(os.Stderr, theme.MutedStyle.Render(
			fmt.Sprintf("Watching %d sessions, press Ctrl+C to stop", queued)))
	}

	<-ctx.Done()
	logging.Logger.Info("Stopping watch")

	// Drain the engine while the recorder is still subscribed so the
	// final statuses get persisted
	container.Engine.Close()
	if recorder != nil {
		recorder.Close()
	}
	return nil
}

// eventPrinter writes engine notifications as they are published
type eventPrinter struct {
	json bool
	mu   sync.Mutex
	out  io.Writer
}

type watchLine struct {
	Loading bool              `json:"loading,omitempty"`
	Session string            `json:"session"`
	Status  *domain.GitStatus `json:"status,omitempty"`
	Time    time.Time         `json:"time"`
}

func (p *eventPrinter) handle(event domain.StatusEvent) {
	var line watchLine
	switch e := event.(type) {
	case domain.LoadingEvent:
		line = watchLine{Loading: true, Session: e.SessionID}
	case domain.UpdatedEvent:
		if e.Status == nil {
			return
		}
		line = watchLine{Session: e.SessionID, Status: e.Status}
	default:
		return
	}
	line.Time = time.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.json {
		data, err := json.Marshal(line)
		if err != nil {
			logging.Logger.Warn("Failed to encode event", "error", err)
			return
		}
		fmt.Fprintln(p.out, string(data))
		return
	}

	stamp := theme.MutedStyle.Render(line.Time.Format(time.TimeOnly))
	name := theme.SessionStyle.Render(line.Session)
	if line.Loading {
		fmt.Fprintf(p.out, "%s  %s  %s\n", stamp, name, theme.RenderLoading())
		return
	}
	fmt.Fprintf(p.out, "%s  %s  %s  %s\n", stamp, name,
		theme.RenderState(line.Status.State), theme.RenderDetails(line.Status))
}
