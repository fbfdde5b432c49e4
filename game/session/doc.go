// Package session provides session management for the Setting Sun puzzle
// server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management and cleanup
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference, generated with
// cryptographic randomness. Lookup is case-insensitive.
//
// Concurrency:
//
// The manager is safe for concurrent use; internal locking keeps the
// session map consistent while multiple goroutines create, retrieve, and
// delete sessions.
//
// Sessions are held in memory only. Board state deliberately does not
// survive a server restart.
package session
