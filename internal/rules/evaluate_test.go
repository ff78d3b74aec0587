package rules

import (
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[core.Position]core.Piece
		next   core.Color
		want   core.State
	}{
		{
			name:   "opening is ongoing",
			pieces: nil,
			next:   core.ColorBlack,
			want:   core.StateOngoing,
		},
		{
			name:   "red out of pieces",
			pieces: map[core.Position]core.Piece{14: core.BlackMan},
			next:   core.ColorRed,
			want:   core.StateBlackWins,
		},
		{
			name:   "black out of pieces",
			pieces: map[core.Position]core.Piece{14: core.RedKing},
			next:   core.ColorBlack,
			want:   core.StateRedWins,
		},
		{
			name:   "red blocked while black can move",
			pieces: map[core.Position]core.Piece{1: core.BlackMan, 5: core.RedMan},
			next:   core.ColorRed,
			want:   core.StateBlackWins,
		},
		{
			name:   "blocked side still ongoing when it is not to move",
			pieces: map[core.Position]core.Piece{1: core.BlackMan, 5: core.RedMan},
			next:   core.ColorBlack,
			want:   core.StateOngoing,
		},
		{
			name:   "both blocked with equal material",
			pieces: map[core.Position]core.Piece{29: core.BlackMan, 1: core.RedMan},
			next:   core.ColorBlack,
			want:   core.StateTie,
		},
		{
			name:   "both blocked, fewer pieces loses",
			pieces: map[core.Position]core.Piece{29: core.BlackMan, 30: core.BlackMan, 1: core.RedMan},
			next:   core.ColorRed,
			want:   core.StateBlackWins,
		},
		{
			name: "both blocked, fewer kings loses",
			pieces: map[core.Position]core.Piece{
				29: core.BlackMan, 30: core.BlackMan, 31: core.BlackMan,
				3: core.RedMan, 4: core.RedKing, 8: core.RedMan,
			},
			next: core.ColorBlack,
			want: core.StateRedWins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b *board.Board
			if tt.pieces == nil {
				start := board.New()
				b = &start
			} else {
				b = setup(tt.pieces)
			}
			if got := Evaluate(b, tt.next); got != tt.want {
				t.Fatalf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}
