// Command analyze prints quick, human-readable heuristics about a puzzle
// layout. It renders the board, summarizes the piece inventory by shape,
// reports cell coverage and free cells, and lists the legal opening moves.
package main

import (
	"fmt"
	"strings"

	"github.com/hinode/setting-sun/game/engine"
)

func main() {
	config := engine.ClassicConfig()

	fmt.Printf("\n=== Analyzing %s ===\n", config.Name)
	analyzeConfig(config)
}

func analyzeConfig(config *engine.PuzzleConfig) {
	if err := engine.ValidatePuzzleConfig(config); err != nil {
		fmt.Printf("Invalid layout: %v\n", err)
		return
	}

	board := engine.BoardFromConfig(config)

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Grid: %d x %d\n", engine.GridWidth, engine.GridHeight)
	fmt.Printf("Exit: (%d, %d)\n", config.Exit.X, config.Exit.Y)
	fmt.Println()
	fmt.Println(renderBoard(board))

	// Piece inventory by shape.
	counts := map[engine.Shape]int{}
	covered := 0
	for _, p := range board.Pieces() {
		counts[p.Shape]++
		covered += len(p.Cells())
	}

	fmt.Printf("Pieces: %d\n", len(board.Pieces()))
	for _, shape := range []engine.Shape{engine.SunSquare, engine.VerticalRect, engine.HorizontalRect, engine.Square} {
		if counts[shape] > 0 {
			fmt.Printf("  %-10s x%d\n", shape, counts[shape])
		}
	}

	free := board.FreeCells()
	fmt.Printf("Coverage: %d/%d cells, %d free\n", covered, engine.GridWidth*engine.GridHeight, len(free))
	for _, cell := range free {
		fmt.Printf("  free: (%d, %d)\n", cell.X, cell.Y)
	}

	// Legal opening moves.
	moves := openingMoves(board, config)
	if len(moves) == 0 {
		fmt.Println("WARNING: no legal opening moves, the layout is frozen")
		return
	}
	fmt.Printf("Opening moves: %d\n", len(moves))
	for _, m := range moves {
		fmt.Printf("  piece %d %s\n", m.pieceID, m.direction)
	}
}

type opening struct {
	pieceID   engine.PieceID
	direction engine.Direction
}

// openingMoves returns every legal (piece, direction) pair on the given board.
func openingMoves(board engine.Board, config *engine.PuzzleConfig) []opening {
	rules := engine.Rules{SunID: config.SunID, Exit: config.Exit}

	var moves []opening
	for _, p := range board.Pieces() {
		legal, err := rules.LegalDirections(board, p.ID)
		if err != nil {
			continue
		}
		for _, d := range engine.Directions {
			if legal[d] {
				moves = append(moves, opening{pieceID: p.ID, direction: d})
			}
		}
	}
	return moves
}

// renderBoard draws the board as a grid of piece digits, '.' for free cells.
func renderBoard(board engine.Board) string {
	grid := [engine.GridHeight][engine.GridWidth]byte{}
	for y := 0; y < engine.GridHeight; y++ {
		for x := 0; x < engine.GridWidth; x++ {
			grid[y][x] = '.'
		}
	}
	for _, p := range board.Pieces() {
		for _, cell := range p.Cells() {
			grid[cell.Y][cell.X] = byte('0' + int(p.ID)%10)
		}
	}

	var sb strings.Builder
	for y := 0; y < engine.GridHeight; y++ {
		sb.Write(grid[y][:])
		sb.WriteByte('\n')
	}
	return sb.String()
}
