package credentials

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
	"github.com/dmitrijs2005/gamestack/internal/logging"
	"golang.org/x/sync/singleflight"
)

const refreshKey = "refresh"

// Refresher exchanges a refresh token for a new access token.
type Refresher interface {
	Refresh(ctx context.Context, in models.RefreshInput) (models.RefreshOutput, error)
}

type ControllerOption func(*Controller)

// WithRefreshTimeout bounds each background refresh.
func WithRefreshTimeout(d time.Duration) ControllerOption {
	return func(c *Controller) { c.refreshTimeout = d }
}

// Controller decides whether the cached token may be used.
type Controller struct {
	store          *Store
	refresher      Refresher
	log            logging.Logger
	refreshTimeout time.Duration

	group singleflight.Group
	wg    sync.WaitGroup
}

func NewController(store *Store, refresher Refresher, log logging.Logger, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:          store,
		refresher:      refresher,
		log:            log,
		refreshTimeout: 10 * time.Second,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ValidToken returns the cached token.
//
// It fails with ErrRequiresAuthentication when nothing is cached or the
// session has expired. When only the token has expired it starts a refresh
// in the background and still returns the stale token.
func (c *Controller) ValidToken(ctx context.Context) (models.Token, error) {
	snap := c.store.Read()
	if snap.Session == nil || snap.Token == nil {
		return models.Token{}, ErrRequiresAuthentication
	}
	now := c.store.Now()
	if snap.Session.Expired(now) {
		return models.Token{}, fmt.Errorf("%w: session expired", ErrRequiresAuthentication)
	}
	if !now.Before(snap.TokenExpiry) {
		c.refreshAsync(ctx, snap)
	}
	return *snap.Token, nil
}

// Refresh runs a refresh now and waits for it. Callers already waiting on an
// in-flight refresh share its result. Cancelling ctx stops the wait; the
// shared refresh itself is bounded only by the refresh timeout.
func (c *Controller) Refresh(ctx context.Context) (models.Token, error) {
	snap := c.store.Read()
	if snap.Session == nil || snap.Token == nil {
		return models.Token{}, ErrRequiresAuthentication
	}
	res := make(chan singleflight.Result, 1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		v, err, shared := c.group.Do(refreshKey, func() (any, error) {
			return c.refreshDetached(ctx, snap)
		})
		res <- singleflight.Result{Val: v, Err: err, Shared: shared}
	}()

	select {
	case <-ctx.Done():
		return models.Token{}, ctx.Err()
	case r := <-res:
		if r.Err != nil {
			return models.Token{}, r.Err
		}
		return r.Val.(models.Token), nil
	}
}

// Wait blocks until background and forced refreshes have finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) refreshAsync(ctx context.Context, snap Snapshot) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		_, err, shared := c.group.Do(refreshKey, func() (any, error) {
			return c.refreshDetached(ctx, snap)
		})
		if err != nil && !shared {
			c.log.Warn(ctx, "token refresh failed", "error", err)
		}
	}()
}

// refreshDetached runs refresh outside the caller's cancellation, so every
// caller sharing the flight sees the same outcome.
func (c *Controller) refreshDetached(ctx context.Context, snap Snapshot) (models.Token, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.refreshTimeout)
	defer cancel()
	return c.refresh(ctx, snap)
}

func (c *Controller) refresh(ctx context.Context, snap Snapshot) (models.Token, error) {
	out, err := c.refresher.Refresh(ctx, models.RefreshInput{
		RefreshToken: snap.Token.RefreshToken,
		Session:      *snap.Session,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("refresh token: %w", err)
	}
	if !c.store.WriteRefreshed(snap.Generation, out.Session, out.Token) {
		c.log.Debug(ctx, "refreshed token discarded, credentials changed meanwhile")
		return out.Token, nil
	}
	c.log.Debug(ctx, "token refreshed", "expires_in", out.Token.ExpiresIn)
	return out.Token, nil
}
