package usecase

import (
	"context"
	"errors"

	"svw.info/gridcheck/internal/domain"
	"svw.info/gridcheck/internal/ports"
)

type Service struct {
	Board   ports.BoardValidator
	Addr    ports.AddrValidator
	Storage ports.Storage
}

func NewService(b ports.BoardValidator, a ports.AddrValidator, st ports.Storage) *Service {
	return &Service{Board: b, Addr: a, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) ValidateBoard(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	if u.Board == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Board.Validate(ctx, b)
}

func (u *Service) ValidateAddr(ctx context.Context, candidate string) (bool, ports.Stats, error) {
	if u.Addr == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Addr.Validate(ctx, candidate)
}

// Persistence
func (u *Service) Save(ctx context.Context, s *domain.Submission) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, s)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Submission, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.SubmissionMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
