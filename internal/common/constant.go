// Package common contains header names and small helpers shared by the SDK
// transport, client and CLI layers.
package common

// Request header names and values sent to the GameStack APIs.
const (
	ContentTypeHeader   = "Content-Type"
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"

	ContentTypeJSON = "application/json"
	BearerPrefix    = "Bearer "
)
