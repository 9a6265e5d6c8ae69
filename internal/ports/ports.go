package ports

import (
	"context"
	"time"

	"svw.info/gridcheck/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Cells    int
	Duration time.Duration
}

// BoardValidator performs structural checks (shape, symbols, row/col/box).
type BoardValidator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, st Stats, err error)
}

// AddrValidator checks dotted-quad IPv4 candidates.
type AddrValidator interface {
	Validate(ctx context.Context, candidate string) (ok bool, st Stats, err error)
}

// Storage persists and retrieves submissions as JSON.
type Storage interface {
	Save(ctx context.Context, s *domain.Submission) error
	Load(ctx context.Context, id string) (*domain.Submission, error)
	List(ctx context.Context) ([]domain.SubmissionMeta, error)
}
