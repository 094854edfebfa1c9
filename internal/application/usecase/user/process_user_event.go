package user

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/user-registry/internal/domain/user"
	"github.com/khoahotran/user-registry/pkg/apperror"
	"github.com/khoahotran/user-registry/pkg/logger"
)

// ProcessUserEventUseCase runs in the worker and checks that a registration event
// refers to a stored user.
type ProcessUserEventUseCase struct {
	userService *user.Service
	logger      logger.Logger
}

func NewProcessUserEventUseCase(repo user.Repository, log logger.Logger) *ProcessUserEventUseCase {
	return &ProcessUserEventUseCase{
		userService: user.NewService(repo),
		logger:      log,
	}
}

func (uc *ProcessUserEventUseCase) Execute(ctx context.Context, ev user.Event) error {
	ctx, span := tracer.Start(ctx, "ProcessUserEvent.Execute")
	defer span.End()
	span.SetAttributes(attribute.String("event_type", string(ev.Type)), attribute.Int64("user_id", ev.UserID))

	if ev.Type != user.EventTypeRegistered {
		uc.logger.Warn("Ignoring unknown user event", zap.String("event_type", string(ev.Type)))
		return nil
	}

	u, err := uc.userService.FindByEmail(ctx, ev.Email)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if u == nil || u.ID != ev.UserID {
		err := apperror.NewNotFound("user", ev.Email)
		span.RecordError(err)
		return err
	}

	uc.logger.Info("User registration confirmed",
		zap.Int64("user_id", u.ID),
		zap.String("email", u.Email),
		zap.Time("registered_at", ev.OccurredAt),
	)
	return nil
}
