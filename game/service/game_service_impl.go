package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hinode/setting-sun/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
	}
}

// CreateSession creates a new puzzle session on the classic layout
func (s *gameServiceImpl) CreateSession(ctx context.Context) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Let the session manager generate a proper 4-character ID
	session, err := s.sessions.Create("")
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	infos := make([]*SessionInfo, 0, len(sessions))
	for _, session := range sessions {
		infos = append(infos, sessionInfo(session))
	}

	return infos, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Move validates and applies a single slide for the selected piece
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, pieceID engine.PieceID, direction engine.Direction) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	result, err := session.Engine.RequestMove(pieceID, direction)
	if err != nil {
		// Unknown piece identity is a caller bug, not a rejected move.
		return nil, err
	}

	return &MoveResult{
		Accepted: result.Accepted,
		Won:      result.Won,
		Message:  result.Message,
		Board:    boardView(session.Engine),
	}, nil
}

// LegalMoves reports which directions the selected piece may slide
func (s *gameServiceImpl) LegalMoves(ctx context.Context, sessionID string, pieceID engine.PieceID) (*LegalMovesResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	directions, err := session.Engine.LegalDirections(pieceID)
	if err != nil {
		return nil, err
	}

	return &LegalMovesResult{
		PieceID:    pieceID,
		Directions: directions,
	}, nil
}

// Reset restores a session's board to the initial layout
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*BoardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	session.Engine.Reset()

	return boardView(session.Engine), nil
}

// GetBoard returns the current board snapshot for a session
func (s *gameServiceImpl) GetBoard(ctx context.Context, sessionID string) (*BoardView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	return boardView(session.Engine), nil
}

// MoveLog returns a paginated view of a session's move log
func (s *gameServiceImpl) MoveLog(ctx context.Context, sessionID string, opts LogOptions) (*LogResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	moves := session.Engine.MoveLog()
	total := len(moves)

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 20
	}

	if strings.EqualFold(opts.Order, "desc") {
		reversed := make([]engine.MoveRecord, total)
		for i, m := range moves {
			reversed[total-1-i] = m
		}
		moves = reversed
	}

	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &LogResponse{
		Moves:       moves[start:end],
		TotalMoves:  total,
		Page:        page,
		PageSize:    limit,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1 && total > 0,
	}, nil
}

// sessionInfo builds the wire representation of a session
func sessionInfo(session *Session) *SessionInfo {
	return &SessionInfo{
		ID:             session.ID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		Puzzle:         session.Engine.Config().Name,
		Board:          boardView(session.Engine),
	}
}

// boardView builds the renderable snapshot of an engine's current board
func boardView(eng *engine.GameEngine) *BoardView {
	board := eng.Board()
	pieces := make([]PieceView, 0, len(board))
	for _, p := range board.Pieces() {
		w, h := p.Dimensions()
		pieces = append(pieces, PieceView{
			ID:     p.ID,
			Shape:  p.Shape,
			X:      p.TopLeft.X,
			Y:      p.TopLeft.Y,
			Width:  w,
			Height: h,
			Sun:    p.ID == eng.Config().SunID,
		})
	}

	return &BoardView{
		GridWidth:  engine.GridWidth,
		GridHeight: engine.GridHeight,
		Exit:       eng.Config().Exit,
		Pieces:     pieces,
		Won:        eng.Won(),
	}
}
