// Package store holds the session log: the append-only, in-memory sequence
// of HealthRecords submitted while the server runs. One Log is created per
// process and injected into every consumer; nothing is persisted.
//
// Readers pull derived views (All, DailyCounts, Snapshot) on demand. The log
// never notifies anyone of a new record.
package store
