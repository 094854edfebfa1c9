package user

import "context"

// Service decouples callers from the concrete repository. It only delegates.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, nu *NewUser) (*User, error) {
	return s.repo.Save(ctx, nu)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}
