package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"mise/internal/compliance/registry"
	"mise/pkg/platform/sentinel"
)

// PostgresStore persists records in Postgres. The physical table per framework
// comes from the framework configuration, which is build-time constant, so
// interpolating the table name into queries is safe. Frameworks that share a
// table carry a framework filter column to keep their rows apart.
type PostgresStore struct {
	db       *sql.DB
	registry *registry.Registry
}

// NewPostgresStore wires the store against the shared database handle.
func NewPostgresStore(db *sql.DB, reg *registry.Registry) *PostgresStore {
	return &PostgresStore{db: db, registry: reg}
}

func (s *PostgresStore) tableFor(framework string) (string, string) {
	cfg := s.registry.Get(framework)
	return cfg.Table("assessments"), cfg.AssessmentFrameworkFilter
}

func (s *PostgresStore) Create(ctx context.Context, rec Record) error {
	table, _ := s.tableFor(rec.Framework)

	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	result, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, venue_id, framework, answers, result, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, table)

	_, err = s.db.ExecContext(ctx, query,
		rec.ID, rec.VenueID, rec.Framework, answers, result, rec.Notes, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, framework string, id uuid.UUID) (Record, error) {
	table, filter := s.tableFor(framework)

	query := fmt.Sprintf(`
		SELECT id, venue_id, framework, answers, result, notes, created_at
		FROM %s WHERE id = $1`, table)
	args := []any{id}
	if filter != "" {
		query += " AND framework = $2"
		args = append(args, framework)
	}

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get assessment: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) ListByVenue(ctx context.Context, framework string, venueID uuid.UUID) ([]Record, error) {
	table, filter := s.tableFor(framework)

	query := fmt.Sprintf(`
		SELECT id, venue_id, framework, answers, result, notes, created_at
		FROM %s WHERE venue_id = $1`, table)
	args := []any{venueID}
	if filter != "" {
		query += " AND framework = $2"
		args = append(args, framework)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec     Record
		answers []byte
		result  []byte
	)
	if err := row.Scan(&rec.ID, &rec.VenueID, &rec.Framework, &answers, &result, &rec.Notes, &rec.CreatedAt); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal(answers, &rec.Answers); err != nil {
		return Record{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	if err := json.Unmarshal(result, &rec.Result); err != nil {
		return Record{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return rec, nil
}
