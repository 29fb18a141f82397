// Package client talks to the GameStack identity and leaderboard REST APIs.
//
// # Overview
//
// Client is the endpoint contract used by the services layer. RESTClient
// implements it over a transport.Executor: it JSON-encodes inputs, adds the
// Content-Type and Authorization headers, and decodes 2xx bodies into the
// records in package models.
//
// # Error Handling
//
// Failures are returned as *Error carrying the HTTP status code and the
// response text. Each Error unwraps to a kind sentinel so callers can match
// with errors.Is: ErrUnauthorized (401), ErrConflict (409), ErrNotFound,
// ErrTimeout (408) and ErrTransport for everything else. NotFound errors keep
// the fixed code 403 used by the leaderboard service.
package client
