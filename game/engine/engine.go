package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for puzzle operations
type Engine interface {
	// Board state
	Board() Board
	Won() bool
	Config() *PuzzleConfig

	// Movement operations
	CanMove(id PieceID, d Direction) (bool, error)
	LegalDirections(id PieceID) (map[Direction]bool, error)
	RequestMove(id PieceID, d Direction) (MoveResult, error)
	Reset() Board

	// Move log
	MoveLog() []MoveRecord
	LastMove() *MoveRecord
}

// GameEngine implements the Engine interface. It owns the current board and
// replaces it wholesale on every accepted move, so readers always observe a
// complete, consistent snapshot.
type GameEngine struct {
	config *PuzzleConfig
	rules  Rules
	board  Board
	won    bool

	// Cumulative log of attempted moves. Reset clears the board, not the log.
	log        []MoveRecord
	totalMoves int
}

// NewEngine creates a new engine for the provided puzzle configuration.
func NewEngine(cfg *PuzzleConfig) (*GameEngine, error) {
	if err := ValidatePuzzleConfig(cfg); err != nil {
		return nil, err
	}
	return &GameEngine{
		config: cfg,
		rules:  Rules{SunID: cfg.SunID, Exit: cfg.Exit},
		board:  BoardFromConfig(cfg),
	}, nil
}

// NewClassicEngine creates an engine for the fixed classic layout.
func NewClassicEngine() *GameEngine {
	eng, err := NewEngine(ClassicConfig())
	if err != nil {
		// The classic layout is a compile-time constant; it cannot fail
		// validation.
		panic(fmt.Sprintf("classic layout invalid: %v", err))
	}
	return eng
}

// Board returns the current board snapshot. Callers must treat it as
// read-only; the engine never mutates a board it has handed out.
func (e *GameEngine) Board() Board {
	return e.board
}

// Won reports whether the winning move has been made.
func (e *GameEngine) Won() bool {
	return e.won
}

// Config returns the puzzle configuration the engine was built from.
func (e *GameEngine) Config() *PuzzleConfig {
	return e.config
}

// CanMove reports whether the identified piece may slide one cell in the
// given direction on the current board. An unknown identity returns
// ErrPieceNotFound.
func (e *GameEngine) CanMove(id PieceID, d Direction) (bool, error) {
	return e.rules.LegalMove(e.board, id, d)
}

// LegalDirections reports, per direction, whether the identified piece may
// slide that way. Used to decide which direction controls to enable.
func (e *GameEngine) LegalDirections(id PieceID) (map[Direction]bool, error) {
	return e.rules.LegalDirections(e.board, id)
}

// RequestMove validates and applies a slide. It always re-validates against
// the current board rather than trusting an earlier CanMove answer. On an
// accepted move the board is replaced with a new value differing in exactly
// one entry; on a rejected move the board is untouched and Accepted is
// false. Won reports whether this move carried the Sun through the exit.
func (e *GameEngine) RequestMove(id PieceID, d Direction) (MoveResult, error) {
	piece, ok := e.board.Piece(id)
	if !ok {
		return MoveResult{}, fmt.Errorf("%w: id %d", ErrPieceNotFound, id)
	}

	legal, err := e.rules.LegalMove(e.board, id, d)
	if err != nil {
		return MoveResult{}, err
	}
	if !legal {
		e.record(id, d, piece.TopLeft, piece.TopLeft, false, false)
		return MoveResult{Accepted: false, Message: e.config.Messages.Blocked}, nil
	}

	// The win condition is evaluated on the pre-move piece: the winning
	// slide is the one leaving the exit-aligned resting position.
	won := e.rules.WinningMove(id, piece, d)
	moved := piece.Move(d)
	e.board = e.board.WithPiece(moved)
	if won {
		e.won = true
	}
	e.record(id, d, piece.TopLeft, moved.TopLeft, true, won)

	msg := fmt.Sprintf(e.config.Messages.Moved, id, d)
	if won {
		msg = fmt.Sprintf(e.config.Messages.Victory, e.totalMoves)
	}
	return MoveResult{Accepted: true, Won: won, Message: msg}, nil
}

// Reset replaces the board with a fresh copy of the initial layout and
// clears the win flag. The cumulative move log is preserved.
func (e *GameEngine) Reset() Board {
	e.board = BoardFromConfig(e.config)
	e.won = false
	return e.board
}

// MoveLog returns the cumulative log of attempted moves.
func (e *GameEngine) MoveLog() []MoveRecord {
	return e.log
}

// LastMove returns the most recent log entry, or nil if no moves were made.
func (e *GameEngine) LastMove() *MoveRecord {
	if len(e.log) == 0 {
		return nil
	}
	return &e.log[len(e.log)-1]
}

func (e *GameEngine) record(id PieceID, d Direction, from, to Position, accepted, won bool) {
	e.totalMoves++
	e.log = append(e.log, MoveRecord{
		PieceID:    id,
		Direction:  d,
		From:       from,
		To:         to,
		Accepted:   accepted,
		Won:        won,
		Timestamp:  time.Now().Unix(),
		MoveNumber: e.totalMoves,
	})
}
