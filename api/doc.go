// Package api provides the REST API server for the Setting Sun puzzle.
//
// The api package implements HTTP handlers over the service layer:
//
// Session management:
//
//	POST   /api/sessions              Create a new puzzle session
//	GET    /api/sessions              List active sessions
//	GET    /api/sessions/{id}         Get session details
//	DELETE /api/sessions/{id}         Delete a session
//
// Puzzle operations:
//
//	GET  /api/sessions/{id}/board                     Current board snapshot
//	GET  /api/sessions/{id}/pieces/{pieceID}/moves    Legal directions for a piece
//	POST /api/sessions/{id}/move                      Slide a piece one cell
//	POST /api/sessions/{id}/reset                     Restore the initial layout
//	GET  /api/sessions/{id}/log                       Paginated move log
//
// WebSocket:
//
//	GET /ws?session={id}    Live board updates for a session
//
// Accepted moves and resets are broadcast to WebSocket watchers of the same
// session, so renderers never need to poll. Rejected moves are reported with
// accepted=false in the response body, not an error status; an unknown piece
// identity is a 400, a missing session a 404.
package api
