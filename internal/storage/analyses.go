package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/eograph"
)

// Analysis is a recorded shortest-path analysis of a stored graph.
type Analysis struct {
	AnalysisID string
	GraphID    string
	CreatedAt  time.Time
	Start      string
	MaxLength  int
	Reachable  int
	Farthest   []FarthestRecord
}

// FarthestRecord is one farthest state and its move sequence.
type FarthestRecord struct {
	State string
	Moves string
}

// AnalysisRepository provides CRUD operations for analyses.
type AnalysisRepository struct {
	db *DB
}

// NewAnalysisRepository creates a new analysis repository.
func NewAnalysisRepository(db *DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create records a report against graphID and returns the analysis ID.
func (r *AnalysisRepository) Create(graphID string, rep eograph.Report) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO analyses (analysis_id, graph_id, created_at, start_state, max_length, reachable)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, graphID, createdAt.Format(timeFormat), rep.Start.String(), rep.MaxLength, rep.Reachable)
		if err != nil {
			return fmt.Errorf("failed to create analysis: %w", err)
		}

		for i, w := range rep.Farthest {
			_, err := tx.Exec(`
				INSERT INTO analysis_farthest (analysis_id, idx, state, moves)
				VALUES (?, ?, ?, ?)
			`, id, i, w.State.String(), w.Moves)
			if err != nil {
				return fmt.Errorf("failed to store farthest state %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves an analysis with its farthest states.
// Returns nil, nil if it does not exist.
func (r *AnalysisRepository) Get(analysisID string) (*Analysis, error) {
	var a Analysis
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT analysis_id, graph_id, created_at, start_state, max_length, reachable
		FROM analyses
		WHERE analysis_id = ?
	`, analysisID).Scan(&a.AnalysisID, &a.GraphID, &createdAtStr, &a.Start, &a.MaxLength, &a.Reachable)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	a.CreatedAt, _ = time.Parse(timeFormat, createdAtStr)

	rows, err := r.db.Query(`
		SELECT state, moves FROM analysis_farthest
		WHERE analysis_id = ?
		ORDER BY idx
	`, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to get farthest states: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f FarthestRecord
		if err := rows.Scan(&f.State, &f.Moves); err != nil {
			return nil, fmt.Errorf("failed to scan farthest state: %w", err)
		}
		a.Farthest = append(a.Farthest, f)
	}

	return &a, rows.Err()
}

// GetLast retrieves the most recent analysis.
// Returns nil, nil if none has been recorded.
func (r *AnalysisRepository) GetLast() (*Analysis, error) {
	var analysisID string
	err := r.db.QueryRow(`
		SELECT analysis_id FROM analyses
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&analysisID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last analysis: %w", err)
	}

	return r.Get(analysisID)
}

// Count returns the number of analyses recorded for a graph.
func (r *AnalysisRepository) Count(graphID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM analyses WHERE graph_id = ?", graphID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}
