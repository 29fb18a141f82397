package credentials

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
	"github.com/dmitrijs2005/gamestack/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeRefresher struct {
	mu      sync.Mutex
	LastIn  models.RefreshInput
	calls   atomic.Int32
	started chan struct{}
	gate    chan struct{}

	// failOnCancel makes Refresh report ctx.Err() once the gate opens.
	failOnCancel bool

	Out models.RefreshOutput
	Err error
}

func (f *fakeRefresher) Refresh(ctx context.Context, in models.RefreshInput) (models.RefreshOutput, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.LastIn = in
	f.mu.Unlock()
	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.failOnCancel && ctx.Err() != nil {
		return models.RefreshOutput{}, ctx.Err()
	}
	return f.Out, f.Err
}

func newLoggedInStore(t *testing.T, clock *fakeClock, expiresIn int64) *Store {
	t.Helper()
	s := NewStore(WithNowFunc(clock.Now))
	s.Write(session(clock.Now().Add(time.Hour)), models.Token{AccessToken: "old", ExpiresIn: expiresIn, RefreshToken: "ref"})
	return s
}

func TestController_ValidToken_Empty(t *testing.T) {
	c := NewController(NewStore(), &fakeRefresher{}, logging.NewNop())

	_, err := c.ValidToken(context.Background())
	require.ErrorIs(t, err, ErrRequiresAuthentication)
}

func TestController_ValidToken_SessionExpired(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(WithNowFunc(clock.Now))
	s.Write(session(clock.Now().Add(time.Minute)), models.Token{AccessToken: "a", ExpiresIn: 3600})
	f := &fakeRefresher{}
	c := NewController(s, f, logging.NewNop())

	clock.Advance(time.Minute)

	_, err := c.ValidToken(context.Background())
	require.ErrorIs(t, err, ErrRequiresAuthentication)
	c.Wait()
	assert.Equal(t, int32(0), f.calls.Load(), "expired session never refreshes")
}

func TestController_ValidToken_Fresh(t *testing.T) {
	clock := newFakeClock()
	f := &fakeRefresher{}
	c := NewController(newLoggedInStore(t, clock, 60), f, logging.NewNop())

	tok, err := c.ValidToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "old", tok.AccessToken)
	c.Wait()
	assert.Equal(t, int32(0), f.calls.Load())
}

func TestController_ValidToken_StaleReturnsImmediatelyAndRefreshes(t *testing.T) {
	clock := newFakeClock()
	s := newLoggedInStore(t, clock, 60)
	f := &fakeRefresher{
		gate: make(chan struct{}),
		Out:  models.RefreshOutput{Token: models.Token{AccessToken: "new", ExpiresIn: 60, RefreshToken: "ref2"}},
	}
	c := NewController(s, f, logging.NewNop())

	clock.Advance(60 * time.Second)

	tok, err := c.ValidToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "old", tok.AccessToken, "stale token is handed out while refresh runs")

	close(f.gate)
	c.Wait()

	assert.Equal(t, int32(1), f.calls.Load())
	assert.Equal(t, "ref", f.LastIn.RefreshToken)
	assert.Equal(t, "sid", f.LastIn.Session.Name)

	snap := s.Read()
	assert.Equal(t, "new", snap.Token.AccessToken)
	assert.Equal(t, clock.Now().Add(60*time.Second), snap.TokenExpiry)
	assert.Equal(t, "sid", snap.Session.Name, "refresh without session keeps the old one")
}

func TestController_ValidToken_RefreshIsShared(t *testing.T) {
	clock := newFakeClock()
	f := &fakeRefresher{
		started: make(chan struct{}, 1),
		gate:    make(chan struct{}),
		Out:     models.RefreshOutput{Token: models.Token{AccessToken: "new", ExpiresIn: 60}},
	}
	c := NewController(newLoggedInStore(t, clock, 1), f, logging.NewNop())
	clock.Advance(time.Second)

	for i := 0; i < 5; i++ {
		_, err := c.ValidToken(context.Background())
		require.NoError(t, err)
	}
	<-f.started
	time.Sleep(50 * time.Millisecond)
	close(f.gate)
	c.Wait()

	assert.Equal(t, int32(1), f.calls.Load())
}

func TestController_RefreshDiscardedAfterLogout(t *testing.T) {
	clock := newFakeClock()
	s := newLoggedInStore(t, clock, 1)
	f := &fakeRefresher{
		started: make(chan struct{}, 1),
		gate:    make(chan struct{}),
		Out:     models.RefreshOutput{Token: models.Token{AccessToken: "new", ExpiresIn: 60}},
	}
	c := NewController(s, f, logging.NewNop())
	clock.Advance(time.Second)

	_, err := c.ValidToken(context.Background())
	require.NoError(t, err)
	<-f.started
	s.Clear()
	close(f.gate)
	c.Wait()

	snap := s.Read()
	assert.Nil(t, snap.Token)
	assert.Nil(t, snap.Session)
}

func TestController_RefreshFailureKeepsStaleTokenAndLogs(t *testing.T) {
	clock := newFakeClock()
	s := newLoggedInStore(t, clock, 1)
	f := &fakeRefresher{Err: errors.New("boom")}

	core, logs := observer.New(zapcore.WarnLevel)
	c := NewController(s, f, logging.FromZap(zap.New(core)))
	clock.Advance(time.Second)

	_, err := c.ValidToken(context.Background())
	require.NoError(t, err)
	c.Wait()

	assert.Equal(t, "old", s.Read().Token.AccessToken)
	require.Equal(t, 1, logs.FilterMessage("token refresh failed").Len())
}

func TestController_RefreshSurvivesCallerCancel(t *testing.T) {
	clock := newFakeClock()
	s := newLoggedInStore(t, clock, 1)
	f := &fakeRefresher{
		gate: make(chan struct{}),
		Out:  models.RefreshOutput{Token: models.Token{AccessToken: "new", ExpiresIn: 60}},
	}
	c := NewController(s, f, logging.NewNop(), WithRefreshTimeout(time.Second))
	clock.Advance(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := c.ValidToken(ctx)
	require.NoError(t, err)
	cancel()
	close(f.gate)
	c.Wait()

	assert.Equal(t, "new", s.Read().Token.AccessToken)
}

func TestController_Refresh_Sync(t *testing.T) {
	clock := newFakeClock()
	s := newLoggedInStore(t, clock, 60)
	f := &fakeRefresher{Out: models.RefreshOutput{Token: models.Token{AccessToken: "new", ExpiresIn: 60}}}
	c := NewController(s, f, logging.NewNop())

	tok, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", tok.AccessToken)
	assert.Equal(t, "new", s.Read().Token.AccessToken)

	_, err = NewController(NewStore(), f, logging.NewNop()).Refresh(context.Background())
	require.ErrorIs(t, err, ErrRequiresAuthentication)

	f.Err = errors.New("down")
	_, err = c.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh token")
}

func TestController_Refresh_CancelledWaiterDoesNotFailSharedRefresh(t *testing.T) {
	clock := newFakeClock()
	s := newLoggedInStore(t, clock, 1)
	f := &fakeRefresher{
		started:      make(chan struct{}, 1),
		gate:         make(chan struct{}),
		failOnCancel: true,
		Out:          models.RefreshOutput{Token: models.Token{AccessToken: "new", ExpiresIn: 60}},
	}
	core, logs := observer.New(zapcore.WarnLevel)
	c := NewController(s, f, logging.FromZap(zap.New(core)), WithRefreshTimeout(time.Second))
	clock.Advance(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	forced := make(chan error, 1)
	go func() {
		_, err := c.Refresh(ctx)
		forced <- err
	}()
	<-f.started

	_, err := c.ValidToken(context.Background())
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)

	cancel()
	require.ErrorIs(t, <-forced, context.Canceled)

	close(f.gate)
	c.Wait()

	assert.Equal(t, "new", s.Read().Token.AccessToken)
	assert.Equal(t, 0, logs.FilterMessage("token refresh failed").Len())
}
