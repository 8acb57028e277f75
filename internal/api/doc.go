// Package api implements the REST client for the donation platform.
//
// A single [Client] wraps all endpoints the terminal UI consumes. Requests
// and responses are plain JSON; the client decodes into the types from
// internal/model and returns errors verbatim, leaving the two-tier error
// policy (banner vs. logged-and-degraded) to the calling view model.
//
// Every operation takes a context.Context; the underlying http.Client
// applies a 30 second timeout on top of whatever deadline the caller sets.
// Authentication is a bearer token obtained from [Client.Login] and carried
// on every subsequent request.
package api
