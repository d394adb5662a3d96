package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/engine"
	"github.com/Nathanpmyoung/ai-labour-calculator-sub000/internal/params"
)

// RunStore persists model runs in a SQLite database under the state
// directory.
type RunStore struct {
	db     *sql.DB
	dbPath string
}

// RunSummary is the list view of a saved run.
type RunSummary struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	CreatedAt              time.Time `json:"createdAt"`
	TargetYear             int       `json:"targetYear"`
	CrossoverYear          int       `json:"crossoverYear"`
	ComputeSufficiencyYear int       `json:"computeSufficiencyYear"`
	FinalAIShare           float64   `json:"finalAIShare"`
	FinalHumanShare        float64   `json:"finalHumanShare"`
}

// SavedRun is a fully loaded run: the parameters that produced it and the
// complete projection.
type SavedRun struct {
	RunSummary
	Params  params.Values   `json:"params"`
	Outputs *engine.Outputs `json:"outputs"`
}

// NewRunStore opens (creating if needed) the run database at
// stateDir/runs.db.
func NewRunStore(stateDir string) (*RunStore, error) {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(stateDir, "runs.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &RunStore{db: db, dbPath: dbPath}, nil
}

// SaveRun persists a run and returns its id.
func (s *RunStore) SaveRun(ctx context.Context, name string, values params.Values, out *engine.Outputs) (int64, error) {
	paramsJSON, err := json.Marshal(values)
	if err != nil {
		return 0, fmt.Errorf("encoding parameters: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (name, created_at, target_year, params_json,
			crossover_year, compute_sufficiency_year,
			final_ai_share, final_human_share, final_unmet_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name,
		time.Now().UTC().Format(time.RFC3339),
		out.Final().Year,
		string(paramsJSON),
		out.CrossoverYear,
		out.ComputeSufficiencyYear,
		out.FinalAIShare,
		out.FinalHumanShare,
		out.FinalUnmetHours,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, yp := range out.Years {
		projJSON, err := json.Marshal(yp)
		if err != nil {
			return 0, fmt.Errorf("encoding year %d: %w", yp.Year, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_years (run_id, year, total_demand_hours,
				hours_ai, hours_human, hours_unmet,
				scarcity_premium, primary_constraint, projection_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, yp.Year, yp.TotalDemandHours,
			yp.TotalHoursAI, yp.TotalHoursHuman, yp.TotalHoursUnmet,
			yp.ScarcityPremium, string(yp.PrimaryConstraint), string(projJSON),
		); err != nil {
			return 0, fmt.Errorf("inserting year %d: %w", yp.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}

	return runID, nil
}

// ListRuns returns saved run summaries, newest first.
func (s *RunStore) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at, target_year,
			crossover_year, compute_sufficiency_year,
			final_ai_share, final_human_share
		FROM runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var rs RunSummary
		var createdAt string
		if err := rows.Scan(&rs.ID, &rs.Name, &createdAt, &rs.TargetYear,
			&rs.CrossoverYear, &rs.ComputeSufficiencyYear,
			&rs.FinalAIShare, &rs.FinalHumanShare); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rs.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, rs)
	}
	return out, rows.Err()
}

// GetRun loads a saved run with its parameters and full projection.
func (s *RunStore) GetRun(ctx context.Context, id int64) (*SavedRun, error) {
	var run SavedRun
	var createdAt, paramsJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, target_year, params_json,
			crossover_year, compute_sufficiency_year,
			final_ai_share, final_human_share
		FROM runs WHERE id = ?`, id).Scan(
		&run.ID, &run.Name, &createdAt, &run.TargetYear, &paramsJSON,
		&run.CrossoverYear, &run.ComputeSufficiencyYear,
		&run.FinalAIShare, &run.FinalHumanShare)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading run %d: %w", id, err)
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	if err := json.Unmarshal([]byte(paramsJSON), &run.Params); err != nil {
		return nil, fmt.Errorf("decoding parameters for run %d: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT projection_json FROM run_years WHERE run_id = ? ORDER BY year ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("loading years for run %d: %w", id, err)
	}
	defer rows.Close()

	run.Outputs = &engine.Outputs{
		CrossoverYear:          run.CrossoverYear,
		ComputeSufficiencyYear: run.ComputeSufficiencyYear,
		FinalAIShare:           run.FinalAIShare,
		FinalHumanShare:        run.FinalHumanShare,
	}
	for rows.Next() {
		var projJSON string
		if err := rows.Scan(&projJSON); err != nil {
			return nil, fmt.Errorf("scanning year for run %d: %w", id, err)
		}
		var yp engine.YearlyProjection
		if err := json.Unmarshal([]byte(projJSON), &yp); err != nil {
			return nil, fmt.Errorf("decoding year for run %d: %w", id, err)
		}
		run.Outputs.Years = append(run.Outputs.Years, yp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(run.Outputs.Years) > 0 {
		run.Outputs.FinalUnmetHours = run.Outputs.Final().TotalHoursUnmet
	}

	return &run, nil
}

// DeleteRun removes a saved run and its yearly rows.
func (s *RunStore) DeleteRun(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting run %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %d not found", id)
	}
	return nil
}

// Close closes the underlying database.
func (s *RunStore) Close() error {
	return s.db.Close()
}
