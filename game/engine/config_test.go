package engine

import (
	"strings"
	"testing"
)

func TestClassicConfig_IsValid(t *testing.T) {
	cfg := ClassicConfig()

	if err := ValidatePuzzleConfig(cfg); err != nil {
		t.Fatalf("ValidatePuzzleConfig: %v", err)
	}
	if len(cfg.Pieces) != 10 {
		t.Errorf("classic layout has %d pieces, want 10", len(cfg.Pieces))
	}
	if cfg.SunID != SunPieceID {
		t.Errorf("SunID = %d, want %d", cfg.SunID, SunPieceID)
	}
	if cfg.Exit != (Position{X: 1, Y: 3}) {
		t.Errorf("Exit = %v, want (1,3)", cfg.Exit)
	}

	board := BoardFromConfig(cfg)
	sun, ok := board.Piece(cfg.SunID)
	if !ok || sun.Shape != SunSquare || sun.TopLeft != (Position{X: 1, Y: 0}) {
		t.Errorf("sun piece = %+v, want 2x2 at (1,0)", sun)
	}
}

func TestValidatePuzzleConfig_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PuzzleConfig)
		wantErr string
	}{
		{
			"empty name",
			func(c *PuzzleConfig) { c.Name = "" },
			"name is required",
		},
		{
			"no pieces",
			func(c *PuzzleConfig) { c.Pieces = nil },
			"at least one piece",
		},
		{
			"duplicate identity",
			func(c *PuzzleConfig) { c.Pieces[9].ID = 8; c.Pieces[9].X = 3 },
			"duplicate piece identity",
		},
		{
			"negative identity",
			func(c *PuzzleConfig) { c.Pieces[0].ID = -1 },
			"non-negative",
		},
		{
			"unknown shape",
			func(c *PuzzleConfig) { c.Pieces[0].Shape = Shape("blob") },
			"unknown shape",
		},
		{
			"sun with wrong shape",
			func(c *PuzzleConfig) { c.Pieces[1].Shape = Square },
			"must be the 2x2 shape",
		},
		{
			"no sun on the board",
			func(c *PuzzleConfig) { c.SunID = 77 },
			"exactly one piece",
		},
		{
			"exit not on the bottom edge",
			func(c *PuzzleConfig) { c.Exit.Y = 1 },
			"flush with the bottom row",
		},
		{
			"exit too far right for the sun",
			func(c *PuzzleConfig) { c.Exit.X = 3 },
			"does not leave room",
		},
		{
			"overlapping pieces",
			func(c *PuzzleConfig) { c.Pieces[6].Y = 2 },
			"both occupy",
		},
		{
			"piece out of bounds",
			func(c *PuzzleConfig) { c.Pieces[9].X = 4 },
			"out-of-bounds",
		},
		{
			"missing victory message",
			func(c *PuzzleConfig) { c.Messages.Victory = "" },
			"messages.victory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ClassicConfig()
			tt.mutate(cfg)

			err := ValidatePuzzleConfig(cfg)
			if err == nil {
				t.Fatal("ValidatePuzzleConfig = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	if err := ValidatePuzzleConfig(nil); err == nil {
		t.Error("ValidatePuzzleConfig(nil) = nil, want error")
	}
}
