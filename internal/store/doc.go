// Package store persists the local session and client configuration.
//
// The storage backend is BoltDB, an embedded key-value store kept in the
// givr configuration directory. Two buckets exist: "session" holds the
// bearer token and the authenticated user's identity written by the login
// command, and "config" holds client defaults such as the server URL.
// Values are JSON.
//
// Nothing fetched from the platform API is ever cached here; every view
// re-fetches from the network on activation. The store only answers "who
// am I and which server do I talk to".
package store
