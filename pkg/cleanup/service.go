// Package cleanup marks abandoned agent sessions stale in the background.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
)

// Sweeper periodically flips active sessions whose last activity is older
// than the stale threshold to "stale". Feature claims held by a stale
// session become overridable, so a crashed agent never wedges a feature.
//
// The sweep is idempotent and safe to run from multiple replicas.
type Sweeper struct {
	client         *ent.Client
	staleThreshold time.Duration
	interval       time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a sweeper. The sweep interval is a quarter of the
// stale threshold, floored at one minute, so a session is flagged soon
// after it crosses the line.
func NewSweeper(client *ent.Client, staleThreshold time.Duration) *Sweeper {
	interval := staleThreshold / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return &Sweeper{
		client:         client,
		staleThreshold: staleThreshold,
		interval:       interval,
	}
}

// Start launches the background sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Session sweeper started",
		"stale_threshold", s.staleThreshold,
		"interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Session sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep uses a detached context so an in-flight update survives shutdown.
func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-s.staleThreshold)
	count, err := s.client.AgentSession.Update().
		Where(
			agentsession.StatusEQ(agentsession.StatusActive),
			agentsession.LastActivityLT(cutoff),
		).
		SetStatus(agentsession.StatusStale).
		Save(ctx)
	if err != nil {
		slog.Error("Session sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Marked sessions stale", "count", count, "cutoff", cutoff)
	}
}
