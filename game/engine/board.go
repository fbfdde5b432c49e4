package engine

import (
	"errors"
	"fmt"
	"sort"
)

// ErrPieceNotFound indicates a lookup with a piece identity that is not on
// the board. This is a caller bug (for example a UI holding a stale ID), not
// an expected gameplay outcome, so it surfaces as an error rather than a
// boolean result.
var ErrPieceNotFound = errors.New("piece not found on board")

// Board maps piece identity to piece. Boards are treated as immutable
// values: an accepted move produces a new board with exactly one entry
// replaced, and the previous value is discarded whole.
type Board map[PieceID]Piece

// Piece looks up a piece by identity.
func (b Board) Piece(id PieceID) (Piece, bool) {
	p, ok := b[id]
	return p, ok
}

// Pieces returns all pieces ordered by identity for stable iteration.
func (b Board) Pieces() []Piece {
	pieces := make([]Piece, 0, len(b))
	for _, p := range b {
		pieces = append(pieces, p)
	}
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].ID < pieces[j].ID })
	return pieces
}

// Clone returns a shallow copy of the board.
func (b Board) Clone() Board {
	next := make(Board, len(b))
	for id, p := range b {
		next[id] = p
	}
	return next
}

// WithPiece returns a new board with the given piece's entry replaced. The
// receiver is left untouched.
func (b Board) WithPiece(p Piece) Board {
	next := b.Clone()
	next[p.ID] = p
	return next
}

// Validate checks the rest-state invariants: every piece's cells lie on the
// grid and no two distinct pieces occupy the same cell.
func (b Board) Validate() error {
	occupied := make(map[Position]PieceID, GridWidth*GridHeight)
	for _, p := range b.Pieces() {
		if !p.Shape.Valid() {
			return fmt.Errorf("piece %d has unknown shape %q", p.ID, p.Shape)
		}
		for _, cell := range p.Cells() {
			if !cell.InBounds() {
				return fmt.Errorf("piece %d occupies out-of-bounds cell (%d,%d)", p.ID, cell.X, cell.Y)
			}
			if otherID, taken := occupied[cell]; taken {
				return fmt.Errorf("pieces %d and %d both occupy cell (%d,%d)", otherID, p.ID, cell.X, cell.Y)
			}
			occupied[cell] = p.ID
		}
	}
	return nil
}

// FreeCells returns the grid cells not covered by any piece, in row-major
// order.
func (b Board) FreeCells() []Position {
	occupied := make(map[Position]struct{}, GridWidth*GridHeight)
	for _, p := range b {
		for _, cell := range p.Cells() {
			occupied[cell] = struct{}{}
		}
	}
	var free []Position
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			pos := Position{X: x, Y: y}
			if _, taken := occupied[pos]; !taken {
				free = append(free, pos)
			}
		}
	}
	return free
}
