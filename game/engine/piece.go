package engine

// Piece is an immutable rigid block: one of the four shapes anchored at its
// top-left cell. Moving a piece produces a new value; pieces are never
// mutated in place.
type Piece struct {
	ID      PieceID  `json:"id"`
	Shape   Shape    `json:"shape"`
	TopLeft Position `json:"top_left"`
}

// Dimensions returns the piece's width and height in cells.
func (p Piece) Dimensions() (w, h int) {
	return p.Shape.Dimensions()
}

// Cells returns the occupied cells in row-major order: the Cartesian product
// of width consecutive x-offsets and height consecutive y-offsets from the
// top-left anchor.
func (p Piece) Cells() []Position {
	w, h := p.Dimensions()
	cells := make([]Position, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cells = append(cells, Position{X: p.TopLeft.X + dx, Y: p.TopLeft.Y + dy})
		}
	}
	return cells
}

// CanMove reports whether translating every occupied cell one step in the
// given direction keeps all of them on the grid. For the composite shapes
// this is the AND over their constituent cells.
func (p Piece) CanMove(d Direction) bool {
	if !d.Valid() {
		return false
	}
	for _, cell := range p.Cells() {
		if !cell.Translate(d).InBounds() {
			return false
		}
	}
	return true
}

// Move returns a copy of the piece translated one step in the given
// direction. It performs no legality check; callers either check CanMove
// first or probe the transiently out-of-bounds copy through the validator.
func (p Piece) Move(d Direction) Piece {
	return Piece{ID: p.ID, Shape: p.Shape, TopLeft: p.TopLeft.Translate(d)}
}

// Intersects reports whether the two pieces' occupied-cell sets share at
// least one cell. It is computed as an exact cell-set intersection rather
// than a bounding-box test.
func (p Piece) Intersects(other Piece) bool {
	occupied := make(map[Position]struct{}, len(p.Cells()))
	for _, cell := range p.Cells() {
		occupied[cell] = struct{}{}
	}
	for _, cell := range other.Cells() {
		if _, ok := occupied[cell]; ok {
			return true
		}
	}
	return false
}
