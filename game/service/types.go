package service

import (
	"time"

	"github.com/hinode/setting-sun/game/engine"
)

// PieceView describes one piece for rendering: its anchor, its footprint,
// and whether it is the sun.
type PieceView struct {
	ID     engine.PieceID `json:"id"`
	Shape  engine.Shape   `json:"shape"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Sun    bool           `json:"sun,omitempty"`
}

// BoardView is the renderable snapshot of a puzzle session.
type BoardView struct {
	GridWidth  int             `json:"grid_width"`
	GridHeight int             `json:"grid_height"`
	Exit       engine.Position `json:"exit"`
	Pieces     []PieceView     `json:"pieces"`
	Won        bool            `json:"won"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Accepted bool       `json:"accepted"`
	Won      bool       `json:"won"`
	Message  string     `json:"message,omitempty"`
	Board    *BoardView `json:"board"`
}

// LegalMovesResult reports, per direction, whether the selected piece may
// slide that way. The presentation layer uses it to decide which arrow
// controls to show.
type LegalMovesResult struct {
	PieceID    engine.PieceID            `json:"piece_id"`
	Directions map[engine.Direction]bool `json:"directions"`
}

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string     `json:"id"`
	CreatedAt      time.Time  `json:"created_at"`
	LastAccessedAt time.Time  `json:"last_accessed_at"`
	Puzzle         string     `json:"puzzle"`
	Board          *BoardView `json:"board"`
}

// LogOptions configures move log retrieval
type LogOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// LogResponse contains a paginated move log
type LogResponse struct {
	Moves       []engine.MoveRecord `json:"moves"`
	TotalMoves  int                 `json:"total_moves"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
	TotalPages  int                 `json:"total_pages"`
	HasNext     bool                `json:"has_next"`
	HasPrevious bool                `json:"has_previous"`
}
