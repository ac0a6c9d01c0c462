package eograph

import (
	"fmt"
	"time"
)

// Arc is one labeled transition out of a state.
type Arc struct {
	Move   Move
	Target State
}

// Graph is the directed transition graph over orientation states.
// Nodes and each node's arcs keep their insertion order.
// A Graph is not mutated after it has been built or decoded and may be
// shared between readers.
type Graph struct {
	nodes []State
	adj   map[State][]Arc
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[State][]Arc)}
}

// AddNode adds s if it is not already present.
func (g *Graph) AddNode(s State) {
	if _, ok := g.adj[s]; ok {
		return
	}
	g.nodes = append(g.nodes, s)
	g.adj[s] = nil
}

// AddArc appends an arc out of from, adding from as a node if needed.
func (g *Graph) AddArc(from State, a Arc) {
	g.AddNode(from)
	g.adj[from] = append(g.adj[from], a)
}

// HasNode reports whether s is a node.
func (g *Graph) HasNode(s State) bool {
	_, ok := g.adj[s]
	return ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []State {
	out := make([]State, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Arcs returns the arcs leaving s in insertion order.
func (g *Graph) Arcs(s State) []Arc {
	return g.adj[s]
}

// OutDegree returns the number of arcs leaving s.
func (g *Graph) OutDegree(s State) int {
	return len(g.adj[s])
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// NumArcs returns the total number of arcs.
func (g *Graph) NumArcs() int {
	n := 0
	for _, arcs := range g.adj {
		n += len(arcs)
	}
	return n
}

// Equal reports whether g and other have the same nodes in the same order
// and the same labeled arcs in the same order.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.nodes) != len(other.nodes) {
		return false
	}
	for i, s := range g.nodes {
		if other.nodes[i] != s {
			return false
		}
		a, b := g.adj[s], other.adj[s]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// Validate checks that every node is a legal state and every arc targets a
// node. If degree is positive every node must have exactly that many arcs.
func (g *Graph) Validate(degree int) error {
	for _, s := range g.nodes {
		if !s.Valid() {
			return fmt.Errorf("%w: illegal node %016b", ErrInvalidGraph, uint16(s))
		}
		arcs := g.adj[s]
		if degree > 0 && len(arcs) != degree {
			return fmt.Errorf("%w: node %s has %d arcs, want %d", ErrInvalidGraph, s, len(arcs), degree)
		}
		for _, a := range arcs {
			if !g.HasNode(a.Target) {
				return fmt.Errorf("%w: arc %s from %s targets unknown state %s", ErrInvalidGraph, a.Move, s, a.Target)
			}
		}
	}
	return nil
}

// Builder materializes the transition graph for a generator table.
type Builder struct {
	gens GeneratorTable
	cfg  *config
}

// NewBuilder creates a builder for the given generator table.
// Returns ErrInvalidGenerator if the table is malformed.
func NewBuilder(gens GeneratorTable, opts ...Option) (*Builder, error) {
	if err := gens.Validate(); err != nil {
		return nil, err
	}
	return &Builder{gens: gens, cfg: newConfig(opts)}, nil
}

// Degree is the out-degree of every node in a built graph.
func (b *Builder) Degree() int {
	return len(b.gens) * len(Turns)
}

// Build enumerates every legal state and adds, per generator, the arcs for
// X, X2 and X'. All three start at the original state; the targets come
// from one, two and three successive quarter turns.
func (b *Builder) Build() *Graph {
	start := time.Now()
	states := EnumerateStates()

	g := &Graph{
		nodes: make([]State, 0, len(states)),
		adj:   make(map[State][]Arc, len(states)),
	}
	for _, s := range states {
		g.AddNode(s)
	}

	for _, s := range states {
		arcs := make([]Arc, 0, b.Degree())
		for _, gen := range b.gens {
			cur := s
			for _, turn := range Turns {
				cur = gen.Quarter(cur)
				arcs = append(arcs, Arc{Move: Move{Face: gen.Face, Turn: turn}, Target: cur})
			}
		}
		g.adj[s] = arcs
	}

	b.cfg.logger.Debug("built transition graph",
		"nodes", g.NumNodes(),
		"arcs", g.NumArcs(),
		"elapsed", time.Since(start).Round(time.Microsecond))
	return g
}

// BuildGraph builds the graph for the default generator table.
func BuildGraph(opts ...Option) *Graph {
	b, err := NewBuilder(DefaultGenerators(), opts...)
	if err != nil {
		panic(err)
	}
	return b.Build()
}
