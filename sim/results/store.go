// Package results persists finished diffusion runs to a SQLite database:
// one row per run with its full configuration, one row per checkpoint with
// the finalized estimates. Intended for density/size scans where a single
// file accumulates every run of a study.
package results

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lattice-sim/lattice-sim/sim"
)

// Store wraps the results database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening results database %s: %w", path, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			lattice INTEGER,
			density DOUBLE,
			sweeps INTEGER,
			checkpoints INTEGER,
			samples INTEGER,
			seed_state INTEGER,
			seed_seq INTEGER,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS measurements (
			run_id TEXT,
			sweep INTEGER,
			mean_r2 DOUBLE,
			diffusion DOUBLE,
			err_r2 DOUBLE,
			err_diffusion DOUBLE,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating results schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun inserts the run and all its checkpoints in one transaction and
// returns the generated run identifier.
func (s *Store) SaveRun(res *sim.Result) (string, error) {
	runID := uuid.NewString()
	cfg := res.Config

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning results transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, lattice, density, sweeps, checkpoints, samples, seed_state, seed_seq)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, cfg.L, cfg.Density, cfg.Sweeps, cfg.Checkpoints, cfg.Samples,
		int64(cfg.SeedState), int64(cfg.SeedSeq))
	if err != nil {
		return "", fmt.Errorf("inserting run row: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO measurements (run_id, sweep, mean_r2, diffusion, err_r2, err_diffusion)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing measurement insert: %w", err)
	}
	defer stmt.Close()

	for _, cp := range res.Checkpoints {
		if _, err := stmt.Exec(runID, cp.Sweep, cp.MeanR2, cp.D, cp.ErrR2, cp.ErrD); err != nil {
			return "", fmt.Errorf("inserting measurement at sweep %d: %w", cp.Sweep, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing results transaction: %w", err)
	}
	return runID, nil
}

// Measurements loads the stored checkpoints of a run, ordered by sweep.
func (s *Store) Measurements(runID string) ([]sim.Checkpoint, error) {
	rows, err := s.db.Query(
		`SELECT sweep, mean_r2, diffusion, err_r2, err_diffusion
		 FROM measurements WHERE run_id = ? ORDER BY sweep`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying measurements: %w", err)
	}
	defer rows.Close()

	var out []sim.Checkpoint
	for rows.Next() {
		var cp sim.Checkpoint
		if err := rows.Scan(&cp.Sweep, &cp.MeanR2, &cp.D, &cp.ErrR2, &cp.ErrD); err != nil {
			return nil, fmt.Errorf("scanning measurement row: %w", err)
		}
		out = append(out, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading measurements: %w", err)
	}
	return out, nil
}
