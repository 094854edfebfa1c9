package http

import (
	userUC "github.com/khoahotran/user-registry/internal/application/usecase/user"
	"github.com/khoahotran/user-registry/internal/domain/user"
)

// RegisterUserRequest uses pointers so "required" rejects absent or null keys
// while empty strings still bind.
type RegisterUserRequest struct {
	Name    *string `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"required"`
	Phone   *string `json:"phone" binding:"required"`
	Address *string `json:"address" binding:"required"`
}

func (req *RegisterUserRequest) ToInput() userUC.RegisterUserInput {
	return userUC.RegisterUserInput{
		Name:    *req.Name,
		Email:   *req.Email,
		Phone:   *req.Phone,
		Address: *req.Address,
	}
}

type UserDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
	}
}
