package eograph

import (
	"errors"
	"testing"
)

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{Face: FaceR, Turn: CW}, "R"},
		{Move{Face: FaceR, Turn: CCW}, "R'"},
		{Move{Face: FaceF, Turn: Double}, "F2"},
		{Move{Face: FaceB, Turn: CCW}, "B'"},
	}
	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("Notation() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	if got := (Move{Face: FaceU, Turn: CW}).Inverse(); got.Turn != CCW {
		t.Errorf("U inverse = %s, want U'", got)
	}
	if got := (Move{Face: FaceU, Turn: CCW}).Inverse(); got.Turn != CW {
		t.Errorf("U' inverse = %s, want U", got)
	}
	if got := (Move{Face: FaceU, Turn: Double}).Inverse(); got.Turn != Double {
		t.Errorf("U2 inverse = %s, want U2", got)
	}
}

func TestParseMove(t *testing.T) {
	for _, m := range DefaultGenerators().Moves() {
		parsed, err := ParseMove(m.Notation())
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", m.Notation(), err)
		}
		if parsed != m {
			t.Errorf("ParseMove(%q) = %v, want %v", m.Notation(), parsed, m)
		}
	}

	for _, bad := range []string{"", "X", "R3", "R''"} {
		if _, err := ParseMove(bad); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", bad, err)
		}
	}
}

func TestParseMovesRejectsInvalidToken(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if FormatMoves(moves) != "R U R' U'" {
		t.Errorf("FormatMoves = %q", FormatMoves(moves))
	}

	if _, err := ParseMoves("R Q U"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMoves with bad token error = %v, want ErrInvalidNotation", err)
	}
}

func TestParseSequence(t *testing.T) {
	moves, err := ParseSequence("FR2UB'")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	want := []Move{
		{Face: FaceF, Turn: CW},
		{Face: FaceR, Turn: Double},
		{Face: FaceU, Turn: CW},
		{Face: FaceB, Turn: CCW},
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %s, want %s", i, moves[i], want[i])
		}
	}
	if got := ConcatMoves(moves); got != "FR2UB'" {
		t.Errorf("ConcatMoves = %q", got)
	}

	if moves, err := ParseSequence(""); err != nil || len(moves) != 0 {
		t.Errorf("empty sequence = %v, %v", moves, err)
	}
	if _, err := ParseSequence("FX"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseSequence(FX) error = %v, want ErrInvalidNotation", err)
	}
}

func TestParseSequenceMatchesParseMove(t *testing.T) {
	for _, label := range []string{"F", "F'", "F`", "F2", "F2'", "F2`", "r2'"} {
		want, err := ParseMove(label)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", label, err)
		}
		got, err := ParseSequence(label)
		if err != nil {
			t.Errorf("ParseSequence(%q): %v", label, err)
			continue
		}
		if len(got) != 1 || got[0] != want {
			t.Errorf("ParseSequence(%q) = %v, want [%s]", label, got, want)
		}
	}

	moves, err := ParseSequence("F2'R U2`")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if got := ConcatMoves(moves); got != "F2RU2" {
		t.Errorf("ConcatMoves = %q, want F2RU2", got)
	}
}

func TestTurnQuarters(t *testing.T) {
	if CW.Quarters() != 1 || Double.Quarters() != 2 || CCW.Quarters() != 3 {
		t.Error("unexpected quarter counts")
	}
	if Turn(5).Quarters() != 0 {
		t.Error("unknown turn should have no quarters")
	}
}
