package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/career-match/internal/types"
)

// Store wraps a PostgreSQL connection pool holding the career catalog.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the catalog database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema executes schema DDL, used by the seed tool to create the
// careers table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context, ddl string) error {
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// UpsertCareer inserts or updates one catalog record.
func (s *Store) UpsertCareer(ctx context.Context, career types.Career) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO careers (id, title, description, required_skills)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET title = $2, description = $3, required_skills = $4, updated_at = NOW()`,
		career.ID, career.Title, career.Description, career.RequiredSkills,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert career %s: %w", career.ID, err)
	}
	return nil
}

// GetCareer retrieves one career by id. Returns nil without error when the
// id is unknown.
func (s *Store) GetCareer(ctx context.Context, id string) (*types.Career, error) {
	var career types.Career
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, ''), required_skills FROM careers WHERE id = $1`,
		id,
	).Scan(&career.ID, &career.Title, &career.Description, &career.RequiredSkills)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career %s: %w", id, err)
	}
	if career.RequiredSkills == nil {
		career.RequiredSkills = []string{}
	}
	return &career, nil
}

// ListCareers retrieves the full catalog in insertion order, which is the
// order the engine's tie-break rules key off.
func (s *Store) ListCareers(ctx context.Context) ([]types.Career, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), required_skills FROM careers ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer rows.Close()

	var careers []types.Career
	for rows.Next() {
		var career types.Career
		if err := rows.Scan(&career.ID, &career.Title, &career.Description, &career.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}
		if career.RequiredSkills == nil {
			career.RequiredSkills = []string{}
		}
		careers = append(careers, career)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read careers: %w", err)
	}
	return careers, nil
}

// CountCareers returns the catalog size.
func (s *Store) CountCareers(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM careers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count careers: %w", err)
	}
	return count, nil
}
