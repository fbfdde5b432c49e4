// Package websocket provides WebSocket transport for the Setting Sun puzzle
// server.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Board broadcasting after accepted moves, wins, and resets
//   - Connection lifecycle management with ping/pong keepalive
//
// Multiple clients can watch the same session; each accepted move pushes the
// new board snapshot to every watcher, so independent renderers stay in
// sync without polling.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// In an HTTP handler
//	hub.ServeWS(w, r, sessionID)
//
//	// After an accepted move
//	hub.BroadcastBoard(sessionID, boardView, "move")
package websocket
