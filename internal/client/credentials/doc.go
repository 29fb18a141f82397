// Package credentials holds the player's session and token in memory and
// decides when the token can be used.
//
// Store is the single source of truth for the session, the token and the
// token's absolute expiry. Controller hands out bearer tokens: it fails with
// ErrRequiresAuthentication when there is no usable session and starts a
// background refresh when the token is stale, returning the stale token to
// the caller without waiting. Concurrent stale observers share one refresh.
// AppUserCache keeps the resolved application user under its own lock.
package credentials
