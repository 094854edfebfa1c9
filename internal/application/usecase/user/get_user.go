package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/user-registry/internal/domain/user"
	"github.com/khoahotran/user-registry/pkg/apperror"
	"github.com/khoahotran/user-registry/pkg/logger"
)

type GetUserUseCase struct {
	userService *user.Service
	logger      logger.Logger
}

func NewGetUserUseCase(repo user.Repository, log logger.Logger) *GetUserUseCase {
	return &GetUserUseCase{
		userService: user.NewService(repo),
		logger:      log,
	}
}

type GetUserInput struct {
	Email string
}

type GetUserOutput struct {
	User *user.User
}

func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	ctx, span := tracer.Start(ctx, "GetUser.Execute")
	defer span.End()

	u, err := uc.userService.FindByEmail(ctx, input.Email)
	if err != nil {
		uc.logger.Warn("User lookup failed", zap.String("email", input.Email), zap.Error(err))
		span.RecordError(err)
		return nil, err
	}
	if u == nil {
		return nil, apperror.NewNotFound("user", input.Email)
	}

	return &GetUserOutput{User: u}, nil
}
