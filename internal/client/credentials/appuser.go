package credentials

import (
	"sync"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
)

// AppUserCache holds the application user resolved after login. It has its
// own lock and never touches the Store.
type AppUserCache struct {
	mu   sync.RWMutex
	user *models.User
}

func NewAppUserCache() *AppUserCache {
	return &AppUserCache{}
}

func (c *AppUserCache) Set(u models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = &u
}

// Alias returns the cached alias, or "" when no user has been resolved.
func (c *AppUserCache) Alias() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return ""
	}
	return c.user.Alias
}

func (c *AppUserCache) User() (models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return models.User{}, false
	}
	return *c.user, true
}

func (c *AppUserCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
}
