package user

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/user-registry/internal/application/service"
	"github.com/khoahotran/user-registry/internal/domain/user"
	"github.com/khoahotran/user-registry/pkg/logger"
)

const publishTimeout = 5 * time.Second

var tracer = otel.Tracer("user_usecase")

type RegisterUserUseCase struct {
	userService *user.Service
	publisher   service.UserEventPublisher
	logger      logger.Logger
}

// NewRegisterUserUseCase accepts a nil publisher; events are then not emitted.
func NewRegisterUserUseCase(repo user.Repository, publisher service.UserEventPublisher, log logger.Logger) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userService: user.NewService(repo),
		publisher:   publisher,
		logger:      log,
	}
}

type RegisterUserInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type RegisterUserOutput struct {
	User *user.User
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	ctx, span := tracer.Start(ctx, "RegisterUser.Execute")
	defer span.End()

	u, err := uc.userService.Register(ctx, &user.NewUser{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int64("user_id", u.ID))

	if uc.publisher != nil {
		ev := user.NewRegisteredEvent(u)
		// Keep the trace, drop the request's cancellation.
		linked := trace.ContextWithSpanContext(context.Background(), span.SpanContext())
		go func() {
			pubCtx, cancel := context.WithTimeout(linked, publishTimeout)
			defer cancel()
			if err := uc.publisher.PublishUserEvent(pubCtx, ev); err != nil {
				uc.logger.Error("Failed to publish user registered event", err, zap.Int64("user_id", ev.UserID))
			}
		}()
	}

	return &RegisterUserOutput{User: u}, nil
}
