package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options selects how the notifier behaves. Enabled must stay false when the
// LiveKit deployment already dispatches agents on room creation.
type Options struct {
	Enabled   bool
	Await     bool
	AgentName string
	Timeout   time.Duration
}

// Notifier asks the orchestration endpoint to place an agent in a room.
// Failures are logged and reported, never returned.
type Notifier struct {
	opts   Options
	signer AdminTokenSigner
	client Client
	now    func() time.Time
	log    zerolog.Logger

	inflight sync.WaitGroup
}

// NewNotifier creates a new dispatch notifier.
func NewNotifier(opts Options, signer AdminTokenSigner, client Client, now func() time.Time, log zerolog.Logger) *Notifier {
	if now == nil {
		now = time.Now
	}
	return &Notifier{
		opts:   opts,
		signer: signer,
		client: client,
		now:    now,
		log:    log.With().Str("component", "dispatch-notifier").Logger(),
	}
}

// Enabled reports whether explicit dispatch is configured.
func (n *Notifier) Enabled() bool {
	return n.opts.Enabled
}

// Trigger runs dispatch according to the configured mode and returns the
// report for the token response.
func (n *Notifier) Trigger(ctx context.Context, room, identity string) Report {
	if !n.opts.Enabled {
		return ReportAutomatic
	}

	if !n.opts.Await {
		n.inflight.Add(1)
		go func() {
			defer n.inflight.Done()
			n.Notify(ctx, room, identity)
		}()
		return ReportScheduled
	}

	if n.Notify(ctx, room, identity) == OutcomeDispatched {
		return ReportDispatched
	}
	return ReportFailed
}

// Notify performs one bounded dispatch attempt. The caller's cancellation is
// ignored so a client hanging up does not abort a dispatch already under way.
func (n *Notifier) Notify(ctx context.Context, room, identity string) Outcome {
	if !n.opts.Enabled {
		return OutcomeSkipped
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.opts.Timeout)
	defer cancel()

	logger := n.log.With().Str("room", room).Str("identity", identity).Logger()
	now := n.now()

	adminToken, err := n.signer.SignAdmin(room, now, AdminTokenTTL)
	if err != nil {
		logger.Error().Err(err).Msg("failed to sign dispatch admin token")
		return OutcomeFailed
	}

	req := &Request{
		Room:      room,
		AgentName: n.opts.AgentName,
		Metadata: Metadata{
			UserIdentity: identity,
			DispatchTime: now.UTC().Format(time.RFC3339),
		},
	}

	start := time.Now()
	if err := n.client.Dispatch(ctx, adminToken, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("elapsed", time.Since(start)).
			Msg("agent dispatch failed")
		return OutcomeFailed
	}

	logger.Info().
		Str("agent_name", n.opts.AgentName).
		Dur("elapsed", time.Since(start)).
		Msg("agent dispatched")
	return OutcomeDispatched
}

// Wait blocks until background dispatches finish or ctx is done.
func (n *Notifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
