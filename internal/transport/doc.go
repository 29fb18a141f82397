// Package transport executes raw HTTP requests for the GameStack REST client.
//
// An Executor takes a verb, headers, URL and body and returns the status code
// with the raw text body. Non-2xx statuses are not errors at this layer; the
// caller classifies them. Network failures surface as *Error, with Timeout set
// when the request ran out of time.
package transport
