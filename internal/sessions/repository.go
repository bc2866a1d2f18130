package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// opens a small pgx pool and verifies it with a ping
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// transaction-mode poolers reject prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates the ai_sessions table when missing
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, querySchema); err != nil {
		return fmt.Errorf("failed to migrate ai_sessions: %w", err)
	}

	return nil
}

// inserts a processing row and returns its id
func (r *Repository) Start(ctx context.Context, params StartParams) (string, error) {
	id := uuid.NewString()

	_, err := r.db.Exec(ctx, queryStart,
		id,
		params.Task,
		params.Language,
		params.InputCode,
		params.Model,
		string(StatusProcessing),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}

	return id, nil
}

func (r *Repository) Complete(ctx context.Context, id string, params CompleteParams) error {
	result, err := r.db.Exec(ctx, queryComplete,
		string(StatusCompleted),
		params.OutputResult,
		params.TokensUsed,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repository) Fail(ctx context.Context, id string, reason string) error {
	result, err := r.db.Exec(ctx, queryFail, string(StatusFailed), reason, id)
	if err != nil {
		return fmt.Errorf("failed to mark session failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// returns a page of sessions newest first plus the total count
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Session, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCount).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, queryList, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sessions := []Session{}

	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, err
		}

		sessions = append(sessions, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(ctx, queryGet, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, err
	}

	return s, nil
}

func scanSession(row rowScanner) (*Session, error) {
	var (
		s      Session
		status string
	)

	err := row.Scan(
		&s.ID,
		&s.Task,
		&s.Language,
		&s.InputCode,
		&s.OutputResult,
		&s.TokensUsed,
		&s.Model,
		&status,
		&s.Error,
		&s.CreatedAt,
		&s.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Status = Status(status)

	return &s, nil
}
