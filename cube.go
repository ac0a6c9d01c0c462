package eograph

// Cube tracks the edge orientation of a cube as moves are applied.
// It works standalone, without building the full graph.
type Cube struct {
	gens  GeneratorTable
	state State
}

// NewCube creates an oriented cube using the default generators.
func NewCube() *Cube {
	return &Cube{gens: DefaultGenerators(), state: Solved}
}

// NewCubeFrom creates a cube at state s using gens.
// Returns ErrInvalidState or ErrInvalidGenerator for bad input.
func NewCubeFrom(s State, gens GeneratorTable) (*Cube, error) {
	if !s.Valid() {
		return nil, ErrInvalidState
	}
	if err := gens.Validate(); err != nil {
		return nil, err
	}
	return &Cube{gens: gens, state: s}, nil
}

// Clone creates a copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// State returns the current orientation.
func (c *Cube) State() State {
	return c.state
}

// IsOriented returns true if every edge is oriented.
func (c *Cube) IsOriented() bool {
	return c.state.IsOriented()
}

// Apply applies moves in order. On error the cube keeps the state reached
// before the failing move.
func (c *Cube) Apply(moves ...Move) error {
	for _, m := range moves {
		next, err := c.gens.Apply(c.state, m)
		if err != nil {
			return err
		}
		c.state = next
	}
	return nil
}

// ApplyNotation parses and applies a move string. Both "F R U'" and the
// concatenated "FRU'" forms are accepted.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseSequence(s)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

// Reset returns the cube to the oriented state.
func (c *Cube) Reset() {
	c.state = Solved
}

// String returns the orientation as 12 '0'/'1' characters.
func (c *Cube) String() string {
	return c.state.String()
}
