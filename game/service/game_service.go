package service

import (
	"context"
	"time"

	"github.com/hinode/setting-sun/game/engine"
)

// GameService defines all puzzle-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Puzzle Operations
	Move(ctx context.Context, sessionID string, pieceID engine.PieceID, direction engine.Direction) (*MoveResult, error)
	LegalMoves(ctx context.Context, sessionID string, pieceID engine.PieceID) (*LegalMovesResult, error)
	Reset(ctx context.Context, sessionID string) (*BoardView, error)

	// Puzzle State
	GetBoard(ctx context.Context, sessionID string) (*BoardView, error)
	MoveLog(ctx context.Context, sessionID string, opts LogOptions) (*LogResponse, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// Session represents an active puzzle session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
