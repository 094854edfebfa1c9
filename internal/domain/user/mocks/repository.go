package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/khoahotran/user-registry/internal/domain/user"
)

// Repository is a testify mock of user.Repository.
type Repository struct {
	mock.Mock
}

func (m *Repository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	var u *user.User
	if v := args.Get(0); v != nil {
		u = v.(*user.User)
	}
	return u, args.Error(1)
}

func (m *Repository) Save(ctx context.Context, nu *user.NewUser) (*user.User, error) {
	args := m.Called(ctx, nu)
	var u *user.User
	if v := args.Get(0); v != nil {
		u = v.(*user.User)
	}
	return u, args.Error(1)
}
