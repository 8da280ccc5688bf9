package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/percolath/percolation"
	"github.com/katalvlaran/percolath/sweep"
)

// defaultBatchSize is how many rows SQLiteSink buffers per transaction.
const defaultBatchSize = 500

const insertRow = `INSERT INTO sweep_rows
	(run_id, simulation, edge_prob, nb_vertices, nb_edges, size_1st, size_2nd, nb_comp, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SQLiteSink is a sweep.Sink that buffers rows and inserts them in batches,
// one transaction per batch.
type SQLiteSink struct {
	db      *DB
	batch   int
	pending []sweep.Row
	now     func() time.Time
}

// NewSQLiteSink returns a sink writing into db. batch <= 0 selects the default.
func NewSQLiteSink(db *DB, batch int) *SQLiteSink {
	if batch <= 0 {
		batch = defaultBatchSize
	}

	return &SQLiteSink{db: db, batch: batch, now: time.Now}
}

// Write buffers r and commits once the batch is full.
func (s *SQLiteSink) Write(r sweep.Row) error {
	s.pending = append(s.pending, r)
	if len(s.pending) < s.batch {
		return nil
	}

	return s.Flush()
}

// Flush commits every buffered row.
func (s *SQLiteSink) Flush() error {
	if len(s.pending) == 0 {
		return nil
	}
	tx, err := s.db.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	stmt, err := tx.Prepare(insertRow)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	ts := s.now().Unix()
	for _, r := range s.pending {
		if _, err := stmt.Exec(r.RunID.String(), r.Simulation, r.T, r.Vertices, r.Retained,
			r.Largest, r.SecondLargest, r.Components, ts); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rows: %w", err)
	}
	s.pending = s.pending[:0]

	return nil
}

// Rows returns every stored row of runID ordered by simulation then T.
func (d *DB) Rows(runID uuid.UUID) ([]sweep.Row, error) {
	rows, err := d.conn.Query(`SELECT simulation, edge_prob, nb_vertices, nb_edges, size_1st, size_2nd, nb_comp
		FROM sweep_rows WHERE run_id = ? ORDER BY simulation, edge_prob, id`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("querying rows: %w", err)
	}
	defer rows.Close()

	var out []sweep.Row
	for rows.Next() {
		r := sweep.Row{RunID: runID}
		var st percolation.Stats
		if err := rows.Scan(&r.Simulation, &st.T, &st.Vertices, &st.Retained,
			&st.Largest, &st.SecondLargest, &st.Components); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Stats = st
		out = append(out, r)
	}

	return out, rows.Err()
}

// RunIDs lists the distinct run identifiers, oldest first.
func (d *DB) RunIDs() ([]uuid.UUID, error) {
	rows, err := d.conn.Query(`SELECT run_id FROM sweep_rows GROUP BY run_id ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning run id: %w", err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing run id %q: %w", raw, err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
