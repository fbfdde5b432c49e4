package engine

// Direction is one of the four orthogonal slide directions.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every slide direction in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four slide directions.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the inverse slide direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// delta returns the unit translation for the direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// The grid dimensions are fixed properties of the Setting Sun puzzle.
const (
	GridWidth  = 4
	GridHeight = 5
)

// Position represents x,y grid coordinates.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds reports whether the position names a cell on the 4x5 grid.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// Translate returns the position shifted one cell in the given direction.
func (p Position) Translate(d Direction) Position {
	dx, dy := d.delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// PieceID identifies a selectable piece on the board.
type PieceID int

// Shape is the closed set of rigid block shapes in the puzzle.
type Shape string

const (
	Square         Shape = "square"     // 1x1
	VerticalRect   Shape = "vertical"   // 1x2
	HorizontalRect Shape = "horizontal" // 2x1
	SunSquare      Shape = "sun"        // 2x2, the piece that must escape
)

// Dimensions returns the width and height of the shape in cells.
func (s Shape) Dimensions() (w, h int) {
	switch s {
	case Square:
		return 1, 1
	case VerticalRect:
		return 1, 2
	case HorizontalRect:
		return 2, 1
	case SunSquare:
		return 2, 2
	}
	return 0, 0
}

// Valid reports whether s is one of the four puzzle shapes.
func (s Shape) Valid() bool {
	w, h := s.Dimensions()
	return w > 0 && h > 0
}

// MoveResult reports the outcome of a requested move.
type MoveResult struct {
	Accepted bool   `json:"accepted"`
	Won      bool   `json:"won"`
	Message  string `json:"message,omitempty"`
}

// MoveRecord is a single entry in the engine's move log.
type MoveRecord struct {
	PieceID    PieceID   `json:"piece_id"`
	Direction  Direction `json:"direction"`
	From       Position  `json:"from"`
	To         Position  `json:"to"`
	Accepted   bool      `json:"accepted"`
	Won        bool      `json:"won"`
	Timestamp  int64     `json:"timestamp"`
	MoveNumber int       `json:"move_number"`
}
