package eograph

import "fmt"

// step records how BFS first reached a state.
type step struct {
	dist   int
	parent State
	via    Move
}

// PathResult holds single-source shortest paths from one start state.
// It is read-only once returned.
type PathResult struct {
	start State
	steps map[State]step
	order []State
}

// ShortestPaths runs breadth-first search over g's arcs, in stored order,
// from start. Every reachable state gets its distance and the arc that
// first reached it; unreachable states are absent from the result.
// Returns ErrStartNotFound if start is not a node of g.
func ShortestPaths(g *Graph, start State) (*PathResult, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidGraph)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, start)
	}

	n := g.NumNodes()
	res := &PathResult{
		start: start,
		steps: make(map[State]step, n),
		order: make([]State, 0, n),
	}

	res.steps[start] = step{dist: 0, parent: start}
	res.order = append(res.order, start)

	// order doubles as the FIFO queue: head advances, tail grows
	for head := 0; head < len(res.order); head++ {
		cur := res.order[head]
		d := res.steps[cur].dist
		for _, a := range g.Arcs(cur) {
			if _, seen := res.steps[a.Target]; seen {
				continue
			}
			res.steps[a.Target] = step{dist: d + 1, parent: cur, via: a.Move}
			res.order = append(res.order, a.Target)
		}
	}

	return res, nil
}

// Start returns the source state.
func (r *PathResult) Start() State {
	return r.start
}

// Len returns the number of reachable states, including the start.
func (r *PathResult) Len() int {
	return len(r.order)
}

// Reachable returns the reachable states in discovery order.
func (r *PathResult) Reachable() []State {
	out := make([]State, len(r.order))
	copy(out, r.order)
	return out
}

// Distance returns the number of arcs on a shortest path to s.
func (r *PathResult) Distance(s State) (int, bool) {
	st, ok := r.steps[s]
	return st.dist, ok
}

// Path returns the states on the chosen shortest path, start first and s
// last. Returns nil if s is unreachable.
func (r *PathResult) Path(s State) []State {
	st, ok := r.steps[s]
	if !ok {
		return nil
	}
	path := make([]State, st.dist+1)
	for i := st.dist; i >= 0; i-- {
		path[i] = s
		s = r.steps[s].parent
	}
	return path
}

// Moves returns the arc labels along Path(s) in traversal order.
// Applied to the start state they produce s. Returns nil if s is
// unreachable or is the start.
func (r *PathResult) Moves(s State) []Move {
	st, ok := r.steps[s]
	if !ok || st.dist == 0 {
		return nil
	}
	moves := make([]Move, st.dist)
	for i := st.dist - 1; i >= 0; i-- {
		cur := r.steps[s]
		moves[i] = cur.via
		s = cur.parent
	}
	return moves
}

// Algorithm returns Moves(s) as concatenated labels, e.g. "FR2B'".
func (r *PathResult) Algorithm(s State) string {
	return ConcatMoves(r.Moves(s))
}

// Solution returns the moves that take s back to the start: the inverse
// of Moves(s) in reverse order.
func (r *PathResult) Solution(s State) []Move {
	moves := r.Moves(s)
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
