// Package engine provides the core logic for the Setting Sun sliding-block
// puzzle.
//
// The engine package implements:
//   - The piece and shape model (1x1, 1x2, 2x1 and the 2x2 sun)
//   - Grid-bounds checking and exact cell-set collision detection
//   - Move validation, including the winning exit slide
//   - Win-condition evaluation and board mutation
//
// Core Types:
//
// The Engine interface defines the contract for puzzle operations,
// implemented by GameEngine. Board maps piece identities to immutable Piece
// values; an accepted move replaces the board with a new value differing in
// one entry. Rules carries the fixed win configuration (sun identity and
// exit position).
//
// Usage:
//
//	eng := engine.NewClassicEngine()
//
//	// Ask which directions a selected piece may slide
//	moves, err := eng.LegalDirections(6)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Apply a move
//	result, err := eng.RequestMove(6, engine.Down)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.Won {
//		fmt.Println("solved!")
//	}
//
// Game Rules:
//
// A fixed 4x5 grid holds ten rigid pieces. A move slides one piece one cell
// up, down, left or right; it is legal only if the piece stays on the grid
// and overlaps no other piece. The puzzle is won when the 2x2 sun, resting
// directly above the two-cell gap centered in the bottom edge, slides down
// through it.
package engine
