// Package service provides the business logic layer for the Setting Sun
// puzzle server.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Move processing and validation
//   - Session lifecycle management
//   - Move log retrieval with pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level puzzle
// operations. SessionManager handles session creation, retrieval, and
// lifecycle.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the puzzle engine, providing session isolation and orchestration.
// Each session maintains its own engine instance with independent board
// state; every session plays the same fixed classic layout.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	gameService := service.NewGameService(sessionMgr)
//
//	// Create a new session
//	info, err := gameService.CreateSession(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide a piece
//	result, err := gameService.Move(ctx, info.ID, 6, engine.Down)
package service
