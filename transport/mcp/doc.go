// Package mcp provides an MCP (Model Context Protocol) surface for the
// Setting Sun puzzle server.
//
// The package implements a thin client that exposes puzzle operations as
// MCP tools and proxies every call to the REST API, so the MCP surface and
// the HTTP surface always agree on behavior. Board snapshots are rendered
// as ASCII grids in tool output, which keeps the puzzle playable from any
// MCP-capable client.
//
// Tools:
//
//	create_session   Start a new puzzle
//	list_sessions    List active puzzles
//	get_board        Render the current board
//	legal_moves      Directions a piece may slide
//	move             Slide a piece one cell
//	reset_game       Restore the initial layout
//	move_log         Review past moves
//
// The underlying server is exposed via GetMCPServer for mounting on an
// HTTP endpoint.
package mcp
