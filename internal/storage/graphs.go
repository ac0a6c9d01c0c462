package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/eograph"
)

// timeFormat sorts lexically in creation order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Sentinel errors for stored graphs.
var (
	ErrGraphNotFound = errors.New("storage: graph not found")
	ErrCorruptGraph  = errors.New("storage: stored graph is corrupt")
)

// GraphRecord describes a stored transition graph.
type GraphRecord struct {
	GraphID   string
	CreatedAt time.Time
	NodeCount int
	ArcCount  int
}

// GraphRepository stores transition graphs node by node and arc by arc.
type GraphRepository struct {
	db *DB
}

// NewGraphRepository creates a new graph repository.
func NewGraphRepository(db *DB) *GraphRepository {
	return &GraphRepository{db: db}
}

// Create stores g in a single transaction and returns its new ID.
func (r *GraphRepository) Create(g *eograph.Graph) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()
	nodes := g.Nodes()

	index := make(map[eograph.State]int, len(nodes))
	for i, s := range nodes {
		index[s] = i
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO graphs (graph_id, created_at, node_count, arc_count)
			VALUES (?, ?, ?, ?)
		`, id, createdAt.Format(timeFormat), g.NumNodes(), g.NumArcs())
		if err != nil {
			return fmt.Errorf("failed to create graph: %w", err)
		}

		nodeStmt, err := tx.Prepare(`
			INSERT INTO graph_nodes (graph_id, node_index, state) VALUES (?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare node insert: %w", err)
		}
		defer nodeStmt.Close()

		arcStmt, err := tx.Prepare(`
			INSERT INTO graph_arcs (graph_id, source, arc_index, label, target) VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare arc insert: %w", err)
		}
		defer arcStmt.Close()

		for i, s := range nodes {
			if _, err := nodeStmt.Exec(id, i, s.String()); err != nil {
				return fmt.Errorf("failed to store node %s: %w", s, err)
			}
			for j, a := range g.Arcs(s) {
				if _, err := arcStmt.Exec(id, index[s], j, a.Move.Notation(), a.Target.String()); err != nil {
					return fmt.Errorf("failed to store arc %s from %s: %w", a.Move, s, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get loads a stored graph, reproducing node and arc order.
// Returns ErrGraphNotFound for an unknown ID and ErrCorruptGraph if the
// rows do not decode to a well-formed graph.
func (r *GraphRepository) Get(graphID string) (*eograph.Graph, error) {
	rec, err := r.GetRecord(graphID)
	if err != nil {
		return nil, err
	}

	nodes, err := r.loadNodes(graphID)
	if err != nil {
		return nil, err
	}
	if len(nodes) != rec.NodeCount {
		return nil, fmt.Errorf("%w: %d nodes stored, header says %d", ErrCorruptGraph, len(nodes), rec.NodeCount)
	}

	g := eograph.NewGraph()
	for _, s := range nodes {
		g.AddNode(s)
	}

	rows, err := r.db.Query(`
		SELECT source, label, target
		FROM graph_arcs
		WHERE graph_id = ?
		ORDER BY source, arc_index
	`, graphID)
	if err != nil {
		return nil, fmt.Errorf("failed to get arcs: %w", err)
	}
	defer rows.Close()

	arcs := 0
	for rows.Next() {
		var source int
		var label, target string
		if err := rows.Scan(&source, &label, &target); err != nil {
			return nil, fmt.Errorf("failed to scan arc: %w", err)
		}
		if source < 0 || source >= len(nodes) {
			return nil, fmt.Errorf("%w: arc source index %d", ErrCorruptGraph, source)
		}
		move, err := eograph.ParseMove(label)
		if err != nil {
			return nil, fmt.Errorf("%w: arc label %q: %w", ErrCorruptGraph, label, err)
		}
		to, err := eograph.ParseState(target)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptGraph, err)
		}
		g.AddArc(nodes[source], eograph.Arc{Move: move, Target: to})
		arcs++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read arcs: %w", err)
	}

	if arcs != rec.ArcCount {
		return nil, fmt.Errorf("%w: %d arcs stored, header says %d", ErrCorruptGraph, arcs, rec.ArcCount)
	}
	if err := g.Validate(0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptGraph, err)
	}

	return g, nil
}

func (r *GraphRepository) loadNodes(graphID string) ([]eograph.State, error) {
	rows, err := r.db.Query(`
		SELECT state FROM graph_nodes
		WHERE graph_id = ?
		ORDER BY node_index
	`, graphID)
	if err != nil {
		return nil, fmt.Errorf("failed to get nodes: %w", err)
	}
	defer rows.Close()

	var nodes []eograph.State
	for rows.Next() {
		var str string
		if err := rows.Scan(&str); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		s, err := eograph.ParseState(str)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptGraph, err)
		}
		nodes = append(nodes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nodes: %w", err)
	}

	return nodes, nil
}

// GetRecord retrieves a graph's header row.
func (r *GraphRepository) GetRecord(graphID string) (*GraphRecord, error) {
	var g GraphRecord
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT graph_id, created_at, node_count, arc_count
		FROM graphs
		WHERE graph_id = ?
	`, graphID).Scan(&g.GraphID, &createdAtStr, &g.NodeCount, &g.ArcCount)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrGraphNotFound, graphID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get graph: %w", err)
	}

	g.CreatedAt, _ = time.Parse(timeFormat, createdAtStr)
	return &g, nil
}

// GetLast retrieves the most recently stored graph header.
// Returns nil, nil if no graph has been stored.
func (r *GraphRepository) GetLast() (*GraphRecord, error) {
	records, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// List retrieves recent graph headers, newest first.
func (r *GraphRepository) List(limit int) ([]GraphRecord, error) {
	rows, err := r.db.Query(`
		SELECT graph_id, created_at, node_count, arc_count
		FROM graphs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list graphs: %w", err)
	}
	defer rows.Close()

	var graphs []GraphRecord
	for rows.Next() {
		var g GraphRecord
		var createdAtStr string
		if err := rows.Scan(&g.GraphID, &createdAtStr, &g.NodeCount, &g.ArcCount); err != nil {
			return nil, fmt.Errorf("failed to scan graph: %w", err)
		}
		g.CreatedAt, _ = time.Parse(timeFormat, createdAtStr)
		graphs = append(graphs, g)
	}

	return graphs, rows.Err()
}

// Delete deletes a graph with its nodes, arcs and analyses (cascading).
func (r *GraphRepository) Delete(graphID string) error {
	_, err := r.db.Exec("DELETE FROM graphs WHERE graph_id = ?", graphID)
	if err != nil {
		return fmt.Errorf("failed to delete graph: %w", err)
	}
	return nil
}
