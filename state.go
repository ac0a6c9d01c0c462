package eograph

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// NumEdges is the number of edge positions on the cube.
	NumEdges = 12

	// NumStates is the number of legal orientation states: 11 free bits,
	// the 12th is fixed by parity.
	NumStates = 1 << (NumEdges - 1)

	stateMask = 1<<NumEdges - 1
)

// State is an edge orientation. Bit i is set when the edge at position i
// is flipped. Positions are numbered by layer, front to back:
//
//	front: 0 1 2 3   (top, right, bottom, left)
//	middle: 4 5 6 7  (top-right, bottom-right, bottom-left, top-left)
//	back:  8 9 10 11 (top, right, bottom, left)
type State uint16

// Solved is the fully oriented state.
const Solved State = 0

// StateFromFree builds a legal state from the 11 free bits of free.
// The 12th bit is set to their parity.
func StateFromFree(free uint16) State {
	free &= NumStates - 1
	s := State(free)
	if bits.OnesCount16(free)%2 == 1 {
		s |= 1 << (NumEdges - 1)
	}
	return s
}

// EnumerateStates returns every legal state, ordered by free bits 0..2047.
func EnumerateStates() []State {
	states := make([]State, NumStates)
	for i := range states {
		states[i] = StateFromFree(uint16(i))
	}
	return states
}

// Flipped reports whether the edge at position i is misoriented.
func (s State) Flipped(i int) bool {
	return s&(1<<uint(i)) != 0
}

// FlipCount returns the number of misoriented edges.
func (s State) FlipCount() int {
	return bits.OnesCount16(uint16(s & stateMask))
}

// Valid reports whether s uses only 12 bits and has an even number of flips.
func (s State) Valid() bool {
	return s&^stateMask == 0 && s.FlipCount()%2 == 0
}

// IsOriented returns true if no edge is flipped.
func (s State) IsOriented() bool {
	return s == Solved
}

// String renders the state as 12 '0'/'1' characters, position 0 first.
func (s State) String() string {
	var b strings.Builder
	b.Grow(NumEdges)
	for i := 0; i < NumEdges; i++ {
		if s.Flipped(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ParseState parses a 12-character '0'/'1' string.
// Returns ErrInvalidState for a wrong length, other characters or odd parity.
func ParseState(str string) (State, error) {
	str = strings.TrimSpace(str)
	if len(str) != NumEdges {
		return 0, fmt.Errorf("%w: %q has %d positions, want %d", ErrInvalidState, str, len(str), NumEdges)
	}

	var s State
	for i := 0; i < NumEdges; i++ {
		switch str[i] {
		case '0':
		case '1':
			s |= 1 << uint(i)
		default:
			return 0, fmt.Errorf("%w: %q has %q at position %d", ErrInvalidState, str, str[i], i)
		}
	}

	if !s.Valid() {
		return 0, fmt.Errorf("%w: %q has odd flip parity", ErrInvalidState, str)
	}
	return s, nil
}

// mustBeValid panics if s is not a legal state.
// Only a broken generator table can produce one.
func mustBeValid(s State) {
	if !s.Valid() {
		panic(fmt.Sprintf("eograph: illegal orientation state %016b", uint16(s)))
	}
}
