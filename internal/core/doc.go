// Package core owns the in-memory progress history.
//
// Overview
//
// The core package models a patient's weekly skin-condition log as an ordered,
// append-only sequence of ProgressEntry values. It knows nothing about HTTP or
// JSON; the api package maps entries to wire types.
//
// Concurrency & Safety
//
// HistoryStore is safe for concurrent use. List returns a copy suitable for use
// without further locking. RecordNext holds the write lock across reading the
// length, deriving the next entry and appending it, so concurrent callers never
// observe or produce duplicate week labels.
//
// Lifecycle
//
// A store is constructed once at process start from a seed (normally
// SeedHistory) and lives until the process exits. Nothing is persisted;
// restarting resets the history to the seed.
//
// Derivation
//
// NextEntry derives a new entry from the current length n and a wall-clock
// time. The formulas are fixed placeholders, not a scoring model:
//
//   week   = "Week " + (n+1)
//   date   = calendar date of now
//   score  = 85 + (n mod 15)
//   status = "Improving"
package core
