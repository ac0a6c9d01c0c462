package artifact

import (
	"encoding/json"
	"fmt"

	"github.com/SeamusWaldron/eograph"
)

// formatVersion is bumped whenever the document layout changes.
const formatVersion = 2

type document struct {
	FormatVersion int       `json:"format_version"`
	NodeCount     int       `json:"node_count"`
	ArcCount      int       `json:"arc_count"`
	Degree        int       `json:"degree"`
	Nodes         []nodeDoc `json:"nodes"`
}

type nodeDoc struct {
	State string   `json:"state"`
	Arcs  []arcDoc `json:"arcs"`
}

type arcDoc struct {
	Move   string `json:"move"`
	Target string `json:"target"`
}

// Encode serializes g as a JSON adjacency list: one entry per node, in
// node order, each holding its (move, target) pairs in arc order. The
// header records the node and arc totals and, when every node has the
// same number of arcs, that out-degree.
func Encode(g *eograph.Graph) ([]byte, error) {
	nodes := g.Nodes()
	doc := document{
		FormatVersion: formatVersion,
		NodeCount:     g.NumNodes(),
		ArcCount:      g.NumArcs(),
		Degree:        uniformDegree(g, nodes),
		Nodes:         make([]nodeDoc, len(nodes)),
	}

	for i, s := range nodes {
		arcs := g.Arcs(s)
		nd := nodeDoc{State: s.String(), Arcs: make([]arcDoc, len(arcs))}
		for j, a := range arcs {
			nd.Arcs[j] = arcDoc{Move: a.Move.Notation(), Target: a.Target.String()}
		}
		doc.Nodes[i] = nd
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph: %w", err)
	}
	return data, nil
}

// Decode parses data produced by Encode.
// Any malformed state, label, duplicate node or dangling arc yields
// ErrCorrupt, as does a body that disagrees with the header totals or
// degree.
func Decode(data []byte) (*eograph.Graph, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if doc.FormatVersion != formatVersion {
		return nil, fmt.Errorf("%w: format version %d, want %d", ErrCorrupt, doc.FormatVersion, formatVersion)
	}

	if len(doc.Nodes) != doc.NodeCount {
		return nil, fmt.Errorf("%w: %d nodes present, header says %d", ErrCorrupt, len(doc.Nodes), doc.NodeCount)
	}

	g := eograph.NewGraph()
	states := make([]eograph.State, len(doc.Nodes))
	for i, nd := range doc.Nodes {
		s, err := eograph.ParseState(nd.State)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", ErrCorrupt, i, err)
		}
		if g.HasNode(s) {
			return nil, fmt.Errorf("%w: node %s listed twice", ErrCorrupt, s)
		}
		g.AddNode(s)
		states[i] = s
	}

	for i, nd := range doc.Nodes {
		for j, ad := range nd.Arcs {
			m, err := eograph.ParseMove(ad.Move)
			if err != nil {
				return nil, fmt.Errorf("%w: node %s arc %d label %q: %w", ErrCorrupt, nd.State, j, ad.Move, err)
			}
			target, err := eograph.ParseState(ad.Target)
			if err != nil {
				return nil, fmt.Errorf("%w: node %s arc %d: %w", ErrCorrupt, nd.State, j, err)
			}
			g.AddArc(states[i], eograph.Arc{Move: m, Target: target})
		}
	}

	if arcs := g.NumArcs(); arcs != doc.ArcCount {
		return nil, fmt.Errorf("%w: %d arcs present, header says %d", ErrCorrupt, arcs, doc.ArcCount)
	}
	if err := g.Validate(doc.Degree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return g, nil
}

// uniformDegree returns the shared out-degree of nodes, or 0 if they differ.
func uniformDegree(g *eograph.Graph, nodes []eograph.State) int {
	if len(nodes) == 0 {
		return 0
	}
	d := g.OutDegree(nodes[0])
	for _, s := range nodes[1:] {
		if g.OutDegree(s) != d {
			return 0
		}
	}
	return d
}
