// Package session persists one record per completed analysis job in an
// append-only SQLite history. Records are summaries plus the full report as
// JSON; nothing ever updates or deletes a row, so the history is a faithful
// log of every job the engine ran.
package session
