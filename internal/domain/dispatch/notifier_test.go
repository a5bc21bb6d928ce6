package dispatch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livekit-token-service/internal/domain/dispatch"
)

type MockSigner struct {
	SignAdminFunc func(room string, issuedAt time.Time, ttl time.Duration) (string, error)
}

func (m *MockSigner) SignAdmin(room string, issuedAt time.Time, ttl time.Duration) (string, error) {
	if m.SignAdminFunc != nil {
		return m.SignAdminFunc(room, issuedAt, ttl)
	}
	return "admin-token", nil
}

type MockClient struct {
	DispatchFunc func(ctx context.Context, bearerToken string, req *dispatch.Request) error
	calls        atomic.Int32
}

func (m *MockClient) Dispatch(ctx context.Context, bearerToken string, req *dispatch.Request) error {
	m.calls.Add(1)
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, bearerToken, req)
	}
	return nil
}

var dispatchNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newNotifier(opts dispatch.Options, signer dispatch.AdminTokenSigner, client dispatch.Client) *dispatch.Notifier {
	if opts.Timeout == 0 {
		opts.Timeout = time.Second
	}
	if opts.AgentName == "" {
		opts.AgentName = "voice-agent"
	}
	return dispatch.NewNotifier(opts, signer, client, func() time.Time { return dispatchNow }, zerolog.Nop())
}

func TestNotifier_DisabledSkipsCall(t *testing.T) {
	client := &MockClient{}
	n := newNotifier(dispatch.Options{Enabled: false}, &MockSigner{}, client)
	assert.False(t, n.Enabled())

	assert.Equal(t, dispatch.ReportAutomatic, n.Trigger(context.Background(), "demo", "alice"))
	assert.Equal(t, dispatch.OutcomeSkipped, n.Notify(context.Background(), "demo", "alice"))
	assert.Zero(t, client.calls.Load())
}

func TestNotifier_AwaitSuccess(t *testing.T) {
	var gotReq *dispatch.Request
	var gotToken string
	var gotTTL time.Duration
	signer := &MockSigner{
		SignAdminFunc: func(room string, issuedAt time.Time, ttl time.Duration) (string, error) {
			gotTTL = ttl
			return "admin-for-" + room, nil
		},
	}
	client := &MockClient{
		DispatchFunc: func(ctx context.Context, bearerToken string, req *dispatch.Request) error {
			gotToken = bearerToken
			gotReq = req
			return nil
		},
	}
	n := newNotifier(dispatch.Options{Enabled: true, Await: true}, signer, client)
	assert.True(t, n.Enabled())

	report := n.Trigger(context.Background(), "demo", "alice")

	assert.Equal(t, dispatch.ReportDispatched, report)
	assert.Equal(t, dispatch.AdminTokenTTL, gotTTL)
	assert.Equal(t, "admin-for-demo", gotToken)
	require.NotNil(t, gotReq)
	assert.Equal(t, "demo", gotReq.Room)
	assert.Equal(t, "voice-agent", gotReq.AgentName)
	assert.Equal(t, "alice", gotReq.Metadata.UserIdentity)
	assert.Equal(t, "2026-03-01T12:00:00Z", gotReq.Metadata.DispatchTime)
}

func TestNotifier_AwaitFailure(t *testing.T) {
	client := &MockClient{
		DispatchFunc: func(ctx context.Context, bearerToken string, req *dispatch.Request) error {
			return errors.New("connection refused")
		},
	}
	n := newNotifier(dispatch.Options{Enabled: true, Await: true}, &MockSigner{}, client)

	assert.Equal(t, dispatch.ReportFailed, n.Trigger(context.Background(), "demo", "alice"))
	assert.Equal(t, int32(1), client.calls.Load(), "failed dispatch must not be retried")
}

func TestNotifier_SignerFailure(t *testing.T) {
	signer := &MockSigner{
		SignAdminFunc: func(room string, issuedAt time.Time, ttl time.Duration) (string, error) {
			return "", errors.New("no secret")
		},
	}
	client := &MockClient{}
	n := newNotifier(dispatch.Options{Enabled: true, Await: true}, signer, client)

	assert.Equal(t, dispatch.OutcomeFailed, n.Notify(context.Background(), "demo", "alice"))
	assert.Zero(t, client.calls.Load())
}

func TestNotifier_TimeoutBoundsCall(t *testing.T) {
	client := &MockClient{
		DispatchFunc: func(ctx context.Context, bearerToken string, req *dispatch.Request) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}
	n := newNotifier(dispatch.Options{Enabled: true, Await: true, Timeout: 50 * time.Millisecond}, &MockSigner{}, client)

	start := time.Now()
	outcome := n.Notify(context.Background(), "demo", "alice")

	assert.Equal(t, dispatch.OutcomeFailed, outcome)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNotifier_IgnoresCallerCancellation(t *testing.T) {
	client := &MockClient{
		DispatchFunc: func(ctx context.Context, bearerToken string, req *dispatch.Request) error {
			return ctx.Err()
		},
	}
	n := newNotifier(dispatch.Options{Enabled: true, Await: true}, &MockSigner{}, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, dispatch.OutcomeDispatched, n.Notify(ctx, "demo", "alice"))
}

func TestNotifier_BackgroundDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	client := &MockClient{
		DispatchFunc: func(ctx context.Context, bearerToken string, req *dispatch.Request) error {
			<-release
			return nil
		},
	}
	n := newNotifier(dispatch.Options{Enabled: true, Await: false}, &MockSigner{}, client)

	report := n.Trigger(context.Background(), "demo", "alice")
	assert.Equal(t, dispatch.ReportScheduled, report)

	waitCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, n.Wait(waitCtx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, n.Wait(context.Background()))
	assert.Equal(t, int32(1), client.calls.Load())
}
