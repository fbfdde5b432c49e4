package engine

import (
	"reflect"
	"testing"
)

func TestShapeDimensions(t *testing.T) {
	tests := []struct {
		name   string
		shape  Shape
		width  int
		height int
	}{
		{"square", Square, 1, 1},
		{"vertical rect", VerticalRect, 1, 2},
		{"horizontal rect", HorizontalRect, 2, 1},
		{"sun square", SunSquare, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.shape.Dimensions()
			if w != tt.width || h != tt.height {
				t.Errorf("Dimensions() = (%d,%d), want (%d,%d)", w, h, tt.width, tt.height)
			}
			if !tt.shape.Valid() {
				t.Errorf("Valid() = false for %q", tt.shape)
			}
		})
	}

	if Shape("triangle").Valid() {
		t.Error("Valid() = true for unknown shape")
	}
}

func TestPieceCells(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		cells []Position
	}{
		{
			"square covers one cell",
			Piece{ID: 6, Shape: Square, TopLeft: Position{1, 3}},
			[]Position{{1, 3}},
		},
		{
			"vertical rect covers two stacked cells",
			Piece{ID: 0, Shape: VerticalRect, TopLeft: Position{0, 0}},
			[]Position{{0, 0}, {0, 1}},
		},
		{
			"horizontal rect covers two side-by-side cells",
			Piece{ID: 4, Shape: HorizontalRect, TopLeft: Position{1, 2}},
			[]Position{{1, 2}, {2, 2}},
		},
		{
			"sun covers a 2x2 block in row-major order",
			Piece{ID: 1, Shape: SunSquare, TopLeft: Position{1, 0}},
			[]Position{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.piece.Cells(); !reflect.DeepEqual(got, tt.cells) {
				t.Errorf("Cells() = %v, want %v", got, tt.cells)
			}
		})
	}
}

func TestPieceCanMove_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		piece     Piece
		direction Direction
		want      bool
	}{
		{"square at origin cannot move up", Piece{Shape: Square, TopLeft: Position{0, 0}}, Up, false},
		{"square at origin cannot move left", Piece{Shape: Square, TopLeft: Position{0, 0}}, Left, false},
		{"square at origin can move right", Piece{Shape: Square, TopLeft: Position{0, 0}}, Right, true},
		{"square at origin can move down", Piece{Shape: Square, TopLeft: Position{0, 0}}, Down, true},
		{"square in bottom-right corner cannot move right", Piece{Shape: Square, TopLeft: Position{3, 4}}, Right, false},
		{"square in bottom-right corner cannot move down", Piece{Shape: Square, TopLeft: Position{3, 4}}, Down, false},
		{"sun at top cannot move up", Piece{Shape: SunSquare, TopLeft: Position{1, 0}}, Up, false},
		{"sun at top can move down", Piece{Shape: SunSquare, TopLeft: Position{1, 0}}, Down, true},
		{"sun at right edge cannot move right", Piece{Shape: SunSquare, TopLeft: Position{2, 0}}, Right, false},
		{"sun flush with bottom cannot move down", Piece{Shape: SunSquare, TopLeft: Position{1, 3}}, Down, false},
		{"vertical rect flush with bottom cannot move down", Piece{Shape: VerticalRect, TopLeft: Position{0, 3}}, Down, false},
		{"horizontal rect at right edge cannot move right", Piece{Shape: HorizontalRect, TopLeft: Position{2, 2}}, Right, false},
		{"horizontal rect mid-grid can move left", Piece{Shape: HorizontalRect, TopLeft: Position{1, 2}}, Left, true},
		{"invalid direction", Piece{Shape: Square, TopLeft: Position{1, 1}}, Direction("diagonal"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.piece.CanMove(tt.direction); got != tt.want {
				t.Errorf("CanMove(%q) = %v, want %v", tt.direction, got, tt.want)
			}
		})
	}
}

func TestPieceMove_RoundTrip(t *testing.T) {
	for _, shape := range []Shape{Square, VerticalRect, HorizontalRect, SunSquare} {
		piece := Piece{ID: 3, Shape: shape, TopLeft: Position{1, 1}}
		for _, d := range Directions {
			back := piece.Move(d).Move(d.Opposite())
			if back != piece {
				t.Errorf("%s: Move(%s) then Move(%s) = %+v, want %+v", shape, d, d.Opposite(), back, piece)
			}
		}
	}
}

func TestPieceMove_PreservesIdentityAndShape(t *testing.T) {
	piece := Piece{ID: 4, Shape: HorizontalRect, TopLeft: Position{1, 2}}
	moved := piece.Move(Down)

	if moved.ID != piece.ID || moved.Shape != piece.Shape {
		t.Errorf("Move changed identity or shape: %+v", moved)
	}
	if moved.TopLeft != (Position{1, 3}) {
		t.Errorf("Move(down) TopLeft = %v, want (1,3)", moved.TopLeft)
	}
	if piece.TopLeft != (Position{1, 2}) {
		t.Error("Move mutated the original piece")
	}
}

func TestPieceIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Piece
		want bool
	}{
		{
			"disjoint squares",
			Piece{ID: 6, Shape: Square, TopLeft: Position{1, 3}},
			Piece{ID: 7, Shape: Square, TopLeft: Position{2, 3}},
			false,
		},
		{
			"same cell",
			Piece{ID: 6, Shape: Square, TopLeft: Position{1, 3}},
			Piece{ID: 7, Shape: Square, TopLeft: Position{1, 3}},
			true,
		},
		{
			"sun overlapping horizontal bar",
			Piece{ID: 1, Shape: SunSquare, TopLeft: Position{1, 1}},
			Piece{ID: 4, Shape: HorizontalRect, TopLeft: Position{1, 2}},
			true,
		},
		{
			"sun beside vertical rect",
			Piece{ID: 1, Shape: SunSquare, TopLeft: Position{1, 0}},
			Piece{ID: 0, Shape: VerticalRect, TopLeft: Position{0, 0}},
			false,
		},
		{
			"vertical rects stacked without touching",
			Piece{ID: 0, Shape: VerticalRect, TopLeft: Position{0, 0}},
			Piece{ID: 3, Shape: VerticalRect, TopLeft: Position{0, 2}},
			false,
		},
		{
			"vertical rects sharing one cell",
			Piece{ID: 0, Shape: VerticalRect, TopLeft: Position{0, 0}},
			Piece{ID: 3, Shape: VerticalRect, TopLeft: Position{0, 1}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}
