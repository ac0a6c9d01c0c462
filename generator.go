package eograph

import "fmt"

// Generator is one face-turn family: the four edge positions a quarter
// turn cycles, and whether that quarter turn also flips them.
type Generator struct {
	Face  Face
	Cycle [4]int
	Flips bool
}

// GeneratorTable is an ordered set of generators. The order fixes the
// arc order in a built graph.
type GeneratorTable []Generator

// DefaultGenerators returns the six face turns. Only F and B flip edge
// orientation, since an edge is oriented when it can be solved with
// <F2, B2, U, D, R, L>.
func DefaultGenerators() GeneratorTable {
	return GeneratorTable{
		{Face: FaceU, Cycle: [4]int{0, 7, 8, 4}},
		{Face: FaceD, Cycle: [4]int{2, 5, 10, 6}},
		{Face: FaceR, Cycle: [4]int{1, 4, 9, 5}},
		{Face: FaceL, Cycle: [4]int{3, 6, 11, 7}},
		{Face: FaceF, Cycle: [4]int{0, 1, 2, 3}, Flips: true},
		{Face: FaceB, Cycle: [4]int{8, 11, 10, 9}, Flips: true},
	}
}

// Validate checks that every cycle holds four distinct positions in range
// and that no face appears twice.
func (t GeneratorTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidGenerator)
	}

	faces := make(map[Face]bool, len(t))
	for _, g := range t {
		if faces[g.Face] {
			return fmt.Errorf("%w: face %s listed twice", ErrInvalidGenerator, g.Face)
		}
		faces[g.Face] = true

		var seen State
		for _, p := range g.Cycle {
			if p < 0 || p >= NumEdges {
				return fmt.Errorf("%w: %s position %d out of range", ErrInvalidGenerator, g.Face, p)
			}
			if seen.Flipped(p) {
				return fmt.Errorf("%w: %s repeats position %d", ErrInvalidGenerator, g.Face, p)
			}
			seen |= 1 << uint(p)
		}
	}
	return nil
}

// Lookup returns the generator for a face.
func (t GeneratorTable) Lookup(face Face) (Generator, bool) {
	for _, g := range t {
		if g.Face == face {
			return g, true
		}
	}
	return Generator{}, false
}

// Moves returns every move the table generates: X, X2, X' per generator.
func (t GeneratorTable) Moves() []Move {
	moves := make([]Move, 0, len(t)*len(Turns))
	for _, g := range t {
		for _, turn := range Turns {
			moves = append(moves, Move{Face: g.Face, Turn: turn})
		}
	}
	return moves
}

// Apply returns the state after applying m to s.
// Returns ErrUnknownFace if the table has no generator for the move's face.
func (t GeneratorTable) Apply(s State, m Move) (State, error) {
	g, ok := t.Lookup(m.Face)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownFace, m.Face)
	}
	if m.Turn.Quarters() == 0 {
		return s, fmt.Errorf("%w: turn %d", ErrInvalidNotation, m.Turn)
	}
	return g.Turn(s, m.Turn), nil
}

// Quarter applies one quarter turn: the value at the cycle's last position
// moves to its first and the rest shift one step along the cycle, then the
// four positions are flipped if the generator flips.
// Panics on an illegal state or an out-of-range position.
func (g Generator) Quarter(s State) State {
	mustBeValid(s)

	c := g.Cycle
	for _, p := range c {
		if p < 0 || p >= NumEdges {
			panic(fmt.Sprintf("eograph: generator %s position %d out of range", g.Face, p))
		}
	}

	last := s.Flipped(c[3])
	out := s
	for i := 3; i > 0; i-- {
		out = out.with(c[i], s.Flipped(c[i-1]))
	}
	out = out.with(c[0], last)

	if g.Flips {
		for _, p := range c {
			out ^= 1 << uint(p)
		}
	}

	mustBeValid(out)
	return out
}

// Turn applies the generator's quarter turn as many times as t requires.
func (g Generator) Turn(s State, t Turn) State {
	for i := 0; i < t.Quarters(); i++ {
		s = g.Quarter(s)
	}
	return s
}

// with returns s with position i set to flipped.
func (s State) with(i int, flipped bool) State {
	if flipped {
		return s | 1<<uint(i)
	}
	return s &^ (1 << uint(i))
}
