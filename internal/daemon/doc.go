// Package daemon runs the long-lived analysis service: a single-instance
// process guarded by a file lock that accepts analysis jobs over a local
// HTTP API and records every completed job in the session history.
package daemon
