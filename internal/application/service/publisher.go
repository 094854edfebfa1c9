package service

import (
	"context"

	"github.com/khoahotran/user-registry/internal/domain/user"
)

type UserEventPublisher interface {
	PublishUserEvent(ctx context.Context, ev user.Event) error
}
