package eograph

import (
	"errors"
	"testing"
)

func TestDefaultGeneratorsValid(t *testing.T) {
	gens := DefaultGenerators()
	if err := gens.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(gens.Moves()) != 18 {
		t.Errorf("default table generates %d moves, want 18", len(gens.Moves()))
	}
}

func TestGeneratorValidateRejects(t *testing.T) {
	tables := map[string]GeneratorTable{
		"empty":        {},
		"out of range": {{Face: FaceU, Cycle: [4]int{0, 1, 2, 12}}},
		"negative":     {{Face: FaceU, Cycle: [4]int{-1, 1, 2, 3}}},
		"repeat":       {{Face: FaceU, Cycle: [4]int{0, 1, 1, 3}}},
		"duplicate face": {
			{Face: FaceU, Cycle: [4]int{0, 1, 2, 3}},
			{Face: FaceU, Cycle: [4]int{4, 5, 6, 7}},
		},
	}
	for name, table := range tables {
		if err := table.Validate(); !errors.Is(err, ErrInvalidGenerator) {
			t.Errorf("%s: Validate error = %v, want ErrInvalidGenerator", name, err)
		}
	}
}

func TestQuarterCycleDirection(t *testing.T) {
	// U cycles 0,7,8,4: the value at 4 moves to 0, 0 to 7, 7 to 8, 8 to 4.
	u, _ := DefaultGenerators().Lookup(FaceU)
	s, err := ParseState("100100000000") // edges 0 and 3 flipped
	if err != nil {
		t.Fatal(err)
	}
	if got := u.Quarter(s).String(); got != "000100010000" {
		t.Errorf("U on %s = %s, want 000100010000", s, got)
	}
}

func TestQuarterFlips(t *testing.T) {
	gens := DefaultGenerators()
	f, _ := gens.Lookup(FaceF)
	b, _ := gens.Lookup(FaceB)

	if got := f.Quarter(Solved).String(); got != "111100000000" {
		t.Errorf("F on solved = %s", got)
	}
	if got := b.Quarter(Solved).String(); got != "000000001111" {
		t.Errorf("B on solved = %s", got)
	}
	if got := f.Turn(Solved, Double); got != Solved {
		t.Errorf("F2 on solved = %s, want solved", got)
	}
}

func TestQuarterFourTimesIsIdentity(t *testing.T) {
	for _, g := range DefaultGenerators() {
		for _, s := range EnumerateStates() {
			cur := s
			for i := 0; i < 4; i++ {
				cur = g.Quarter(cur)
			}
			if cur != s {
				t.Fatalf("%s^4 on %s = %s", g.Face, s, cur)
			}
		}
	}
}

func TestMoveThenInverseRoundTrip(t *testing.T) {
	gens := DefaultGenerators()
	for _, g := range gens {
		m := Move{Face: g.Face, Turn: CW}
		for _, s := range EnumerateStates() {
			there, err := gens.Apply(s, m)
			if err != nil {
				t.Fatal(err)
			}
			back, _ := gens.Apply(there, m.Inverse())
			if back != s {
				t.Fatalf("%s then %s from %s = %s", m, m.Inverse(), s, back)
			}

			there, _ = gens.Apply(s, m.Inverse())
			back, _ = gens.Apply(there, m)
			if back != s {
				t.Fatalf("%s then %s from %s = %s", m.Inverse(), m, s, back)
			}
		}
	}
}

func TestQuarterPanicsOnIllegalState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Quarter on odd-parity state should panic")
		}
	}()
	u, _ := DefaultGenerators().Lookup(FaceU)
	u.Quarter(State(1))
}

func TestApplyUnknownFace(t *testing.T) {
	gens := GeneratorTable{{Face: FaceF, Cycle: [4]int{0, 1, 2, 3}, Flips: true}}
	if _, err := gens.Apply(Solved, Move{Face: FaceU, Turn: CW}); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("Apply error = %v, want ErrUnknownFace", err)
	}
}
