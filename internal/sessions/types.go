package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSessionNotFound = errors.New("analysis session not found")
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// one recorded analysis
type Session struct {
	ID           string     `json:"id"`
	Task         string     `json:"task"`
	Language     string     `json:"language,omitempty"`
	InputCode    string     `json:"input_code"`
	OutputResult string     `json:"output_result,omitempty"`
	Model        string     `json:"model"`
	TokensUsed   int        `json:"tokens_used"`
	Status       Status     `json:"status"`
	Error        string     `json:"error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

type StartParams struct {
	Task      string
	Language  string
	InputCode string
	Model     string
}

type CompleteParams struct {
	OutputResult string
	TokensUsed   int
}

// writes the lifecycle of one analysis
type Recorder interface {
	Start(ctx context.Context, params StartParams) (string, error)
	Complete(ctx context.Context, id string, params CompleteParams) error
	Fail(ctx context.Context, id string, reason string) error
}

// reads recorded analyses
type Lister interface {
	List(ctx context.Context, limit, offset int) ([]Session, int, error)
	Get(ctx context.Context, id string) (*Session, error)
}

// Postgres-backed Recorder and Lister
type Repository struct {
	db *pgxpool.Pool
}

// records nothing, used when no database is configured
type NopRecorder struct{}

func (NopRecorder) Start(context.Context, StartParams) (string, error)     { return "", nil }
func (NopRecorder) Complete(context.Context, string, CompleteParams) error { return nil }
func (NopRecorder) Fail(context.Context, string, string) error             { return nil }

var (
	_ Recorder = (*Repository)(nil)
	_ Lister   = (*Repository)(nil)
	_ Recorder = NopRecorder{}
)
