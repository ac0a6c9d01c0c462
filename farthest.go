package eograph

import "time"

// Witness is a state together with one shortest move sequence reaching it.
type Witness struct {
	State State
	Moves string
}

// Report summarizes a shortest-path result.
type Report struct {
	Start     State
	MaxLength int
	Reachable int
	Farthest  []Witness
}

// Farthest scans every reachable state and keeps those at the greatest
// distance. A strictly greater distance discards what was kept so far.
func Farthest(r *PathResult) Report {
	rep := Report{Start: r.start, Reachable: r.Len()}

	for _, s := range r.order {
		d := r.steps[s].dist
		if d > rep.MaxLength {
			rep.MaxLength = d
			rep.Farthest = rep.Farthest[:0]
		}
		if d == rep.MaxLength {
			rep.Farthest = append(rep.Farthest, Witness{State: s, Moves: r.Algorithm(s)})
		}
	}

	return rep
}

// States returns the farthest states in report order.
func (rep Report) States() []State {
	out := make([]State, len(rep.Farthest))
	for i, w := range rep.Farthest {
		out[i] = w.State
	}
	return out
}

// Histogram returns the number of reachable states at each distance,
// indexed by distance.
func Histogram(r *PathResult) []int {
	var counts []int
	for _, s := range r.order {
		d := r.steps[s].dist
		for len(counts) <= d {
			counts = append(counts, 0)
		}
		counts[d]++
	}
	return counts
}

// Analyze searches g from the start state (Solved unless WithStart is
// given) and reports the farthest states.
func Analyze(g *Graph, opts ...Option) (*PathResult, Report, error) {
	cfg := newConfig(opts)
	start := time.Now()

	res, err := ShortestPaths(g, cfg.start)
	if err != nil {
		return nil, Report{}, err
	}
	rep := Farthest(res)

	cfg.logger.Debug("shortest paths computed",
		"start", cfg.start,
		"reachable", rep.Reachable,
		"max_length", rep.MaxLength,
		"farthest", len(rep.Farthest),
		"elapsed", time.Since(start).Round(time.Microsecond))
	if rep.Reachable < g.NumNodes() {
		cfg.logger.Warn("some states are unreachable", "reachable", rep.Reachable, "nodes", g.NumNodes())
	}
	return res, rep, nil
}
