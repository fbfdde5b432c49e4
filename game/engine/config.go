package engine

import "fmt"

// PieceLayout describes one piece's shape and starting cell in a
// configuration.
type PieceLayout struct {
	ID    PieceID `json:"id"`
	Shape Shape   `json:"shape"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
}

// Messages holds the player-facing strings the engine attaches to move
// results.
type Messages struct {
	Welcome  string `json:"welcome"`
	Blocked  string `json:"blocked"`
	Moved    string `json:"moved"`
	Victory  string `json:"victory"`
	NotFound string `json:"not_found"`
}

// PuzzleConfig describes a complete puzzle instance: the piece layout, the
// identity of the Sun, and the exit-aligned position. The grid itself is
// always 4x5; this puzzle does not support other board sizes.
type PuzzleConfig struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	SunID       PieceID       `json:"sun_id"`
	Exit        Position      `json:"exit"`
	Pieces      []PieceLayout `json:"pieces"`
	Messages    Messages      `json:"messages"`
}

// The classic layout's piece identities. SunPieceID is the 2x2 piece that
// must escape through the bottom exit.
const SunPieceID PieceID = 1

// ClassicConfig returns the fixed ten-piece Setting Sun layout: four
// vertical rectangles in the corners, the Sun at top center, a horizontal
// bar across the middle, and four unit squares. The two free cells at the
// bottom center form the exit.
func ClassicConfig() *PuzzleConfig {
	return &PuzzleConfig{
		Name:        "Setting Sun",
		Description: "Slide the 2x2 sun out through the gap in the bottom edge",
		SunID:       SunPieceID,
		Exit:        Position{X: 1, Y: GridHeight - 2},
		Pieces: []PieceLayout{
			{ID: 0, Shape: VerticalRect, X: 0, Y: 0},
			{ID: 1, Shape: SunSquare, X: 1, Y: 0},
			{ID: 2, Shape: VerticalRect, X: 3, Y: 0},
			{ID: 3, Shape: VerticalRect, X: 0, Y: 2},
			{ID: 4, Shape: HorizontalRect, X: 1, Y: 2},
			{ID: 5, Shape: VerticalRect, X: 3, Y: 2},
			{ID: 6, Shape: Square, X: 1, Y: 3},
			{ID: 7, Shape: Square, X: 2, Y: 3},
			{ID: 8, Shape: Square, X: 0, Y: 4},
			{ID: 9, Shape: Square, X: 3, Y: 4},
		},
		Messages: Messages{
			Welcome:  "Slide the sun down through the bottom exit to win",
			Blocked:  "That piece can't move that way",
			Moved:    "Moved piece %d %s",
			Victory:  "The sun has set! You solved the puzzle in %d moves",
			NotFound: "No such piece on the board",
		},
	}
}

// ValidatePuzzleConfig checks that a configuration describes a well-formed,
// winnable-by-construction puzzle: pieces with unique identities and known
// shapes, all on the grid, pairwise disjoint, exactly one Sun of the 2x2
// shape, and an exit the Sun can actually align with on the bottom edge.
func ValidatePuzzleConfig(cfg *PuzzleConfig) error {
	if cfg == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if cfg.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if len(cfg.Pieces) == 0 {
		return fmt.Errorf("config validation: at least one piece is required")
	}

	sunW, sunH := SunSquare.Dimensions()
	if cfg.Exit.Y != GridHeight-sunH {
		return fmt.Errorf("config validation: exit must sit flush with the bottom row, want y=%d, got y=%d",
			GridHeight-sunH, cfg.Exit.Y)
	}
	if cfg.Exit.X < 0 || cfg.Exit.X+sunW > GridWidth {
		return fmt.Errorf("config validation: exit x=%d does not leave room for a %d-wide piece", cfg.Exit.X, sunW)
	}

	seen := make(map[PieceID]bool, len(cfg.Pieces))
	sunCount := 0
	for _, layout := range cfg.Pieces {
		if layout.ID < 0 {
			return fmt.Errorf("config validation: piece identity %d must be non-negative", layout.ID)
		}
		if seen[layout.ID] {
			return fmt.Errorf("config validation: duplicate piece identity %d", layout.ID)
		}
		seen[layout.ID] = true

		if !layout.Shape.Valid() {
			return fmt.Errorf("config validation: piece %d has unknown shape %q", layout.ID, layout.Shape)
		}
		if layout.ID == cfg.SunID {
			sunCount++
			if layout.Shape != SunSquare {
				return fmt.Errorf("config validation: sun piece %d must be the 2x2 shape, got %q", layout.ID, layout.Shape)
			}
		}
	}
	if sunCount != 1 {
		return fmt.Errorf("config validation: exactly one piece must carry the sun identity %d, got %d", cfg.SunID, sunCount)
	}

	if cfg.Messages.Victory == "" {
		return fmt.Errorf("config validation: messages.victory is required")
	}

	// Bounds and disjointness are the same invariants a resting board obeys.
	if err := BoardFromConfig(cfg).Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	return nil
}

// BoardFromConfig builds the initial board described by the configuration.
func BoardFromConfig(cfg *PuzzleConfig) Board {
	board := make(Board, len(cfg.Pieces))
	for _, layout := range cfg.Pieces {
		board[layout.ID] = Piece{
			ID:      layout.ID,
			Shape:   layout.Shape,
			TopLeft: Position{X: layout.X, Y: layout.Y},
		}
	}
	return board
}
