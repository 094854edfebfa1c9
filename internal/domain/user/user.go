package user

import (
	"context"
)

type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewUser is the creation payload. It is never stored on its own; Save turns it into a User.
type NewUser struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func (nu *NewUser) ToUser(id int64) *User {
	return &User{
		ID:      id,
		Name:    nu.Name,
		Email:   nu.Email,
		Phone:   nu.Phone,
		Address: nu.Address,
	}
}

// Repository is the persistence contract for users.
// FindByEmail returns (nil, nil) when no user matches.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, nu *NewUser) (*User, error)
}
