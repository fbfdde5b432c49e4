package engine

import "fmt"

// Rules captures the fixed win configuration of a puzzle instance: which
// piece is the Sun and the exit-aligned top-left position from which it may
// slide off the grid.
type Rules struct {
	SunID PieceID
	Exit  Position
}

// WinningMove reports whether a slide is the winning one: the Sun, moving
// down, from the resting position that aligns it with the bottom exit. The
// check uses the pre-move position because the exit slide itself leaves the
// grid; reaching the exit is the win, there is no further slide to validate.
func (r Rules) WinningMove(id PieceID, before Piece, d Direction) bool {
	return id == r.SunID && d == Down && before.TopLeft == r.Exit
}

// LegalMove decides whether sliding the identified piece one cell in the
// given direction is allowed on this board.
//
// An unknown piece identity is a contract violation and returns
// ErrPieceNotFound. The winning exit slide is permitted even though it fails
// ordinary bounds checking. Otherwise the piece must stay on the grid and
// the moved footprint must not intersect any other piece; cells the piece
// vacates itself are never counted as blocked.
func (r Rules) LegalMove(b Board, id PieceID, d Direction) (bool, error) {
	piece, ok := b.Piece(id)
	if !ok {
		return false, fmt.Errorf("%w: id %d", ErrPieceNotFound, id)
	}
	if !d.Valid() {
		return false, nil
	}

	if r.WinningMove(id, piece, d) {
		return true, nil
	}

	if !piece.CanMove(d) {
		return false, nil
	}

	moved := piece.Move(d)
	for otherID, other := range b {
		if otherID == id {
			continue
		}
		if moved.Intersects(other) {
			return false, nil
		}
	}
	return true, nil
}

// LegalDirections evaluates LegalMove for every direction, returning a map
// suitable for deciding which direction controls to show for a selected
// piece.
func (r Rules) LegalDirections(b Board, id PieceID) (map[Direction]bool, error) {
	moves := make(map[Direction]bool, len(Directions))
	for _, d := range Directions {
		legal, err := r.LegalMove(b, id, d)
		if err != nil {
			return nil, err
		}
		moves[d] = legal
	}
	return moves, nil
}
