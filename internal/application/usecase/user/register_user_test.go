package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/khoahotran/user-registry/internal/domain/user"
	"github.com/khoahotran/user-registry/internal/domain/user/mocks"
	"github.com/khoahotran/user-registry/pkg/apperror"
	"github.com/khoahotran/user-registry/pkg/logger"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishUserEvent(ctx context.Context, ev user.Event) error {
	return m.Called(ctx, ev).Error(0)
}

var anaInput = RegisterUserInput{Name: "Ana", Email: "ana@x.com", Phone: "123", Address: "St 1"}

func anaNewUser() *user.NewUser {
	return &user.NewUser{Name: "Ana", Email: "ana@x.com", Phone: "123", Address: "St 1"}
}

func TestRegisterUser_Success(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("Save", mock.Anything, anaNewUser()).Return(anaNewUser().ToUser(1), nil).Once()

	uc := NewRegisterUserUseCase(repo, nil, logger.NewNopLogger())
	out, err := uc.Execute(context.Background(), anaInput)

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.User.ID)
	assert.Equal(t, "ana@x.com", out.User.Email)
	repo.AssertExpectations(t)
}

func TestRegisterUser_RepositoryError(t *testing.T) {
	repo := new(mocks.Repository)
	saveErr := apperror.NewConflict("user", "email", "ana@x.com", nil)
	repo.On("Save", mock.Anything, anaNewUser()).Return(nil, saveErr).Once()
	pub := new(mockPublisher)

	uc := NewRegisterUserUseCase(repo, pub, logger.NewNopLogger())
	out, err := uc.Execute(context.Background(), anaInput)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	pub.AssertNotCalled(t, "PublishUserEvent", mock.Anything, mock.Anything)
}

func TestRegisterUser_PublishesEvent(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("Save", mock.Anything, anaNewUser()).Return(anaNewUser().ToUser(9), nil).Once()

	published := make(chan user.Event, 1)
	pub := new(mockPublisher)
	pub.On("PublishUserEvent", mock.Anything, mock.AnythingOfType("user.Event")).
		Run(func(args mock.Arguments) { published <- args.Get(1).(user.Event) }).
		Return(nil).Once()

	uc := NewRegisterUserUseCase(repo, pub, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), anaInput)
	require.NoError(t, err)

	select {
	case ev := <-published:
		assert.Equal(t, user.EventTypeRegistered, ev.Type)
		assert.Equal(t, int64(9), ev.UserID)
		assert.Equal(t, "ana@x.com", ev.Email)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}

func TestRegisterUser_PublishFailureDoesNotFailRegistration(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("Save", mock.Anything, anaNewUser()).Return(anaNewUser().ToUser(2), nil).Once()

	done := make(chan struct{})
	pub := new(mockPublisher)
	pub.On("PublishUserEvent", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { close(done) }).
		Return(errors.New("broker unavailable")).Once()

	uc := NewRegisterUserUseCase(repo, pub, logger.NewNopLogger())
	out, err := uc.Execute(context.Background(), anaInput)

	require.NoError(t, err)
	assert.Equal(t, int64(2), out.User.ID)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher was not called")
	}
}

func TestRegisterUser_PublishKeepsTraceButNotCancellation(t *testing.T) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider())

	repo := new(mocks.Repository)
	repo.On("Save", mock.Anything, anaNewUser()).Return(anaNewUser().ToUser(3), nil).Once()

	publishCtx := make(chan context.Context, 1)
	pub := new(mockPublisher)
	pub.On("PublishUserEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { publishCtx <- args.Get(0).(context.Context) }).
		Return(nil).Once()

	reqCtx, parent := otel.Tracer("test").Start(context.Background(), "request")
	reqCtx, cancelReq := context.WithCancel(reqCtx)

	uc := NewRegisterUserUseCase(repo, pub, logger.NewNopLogger())
	_, err := uc.Execute(reqCtx, anaInput)
	require.NoError(t, err)
	cancelReq()
	parent.End()

	select {
	case ctx := <-publishCtx:
		sc := trace.SpanContextFromContext(ctx)
		assert.True(t, sc.IsValid())
		assert.Equal(t, parent.SpanContext().TraceID(), sc.TraceID())
		assert.NotEqual(t, parent.SpanContext().SpanID(), sc.SpanID())
		assert.NotErrorIs(t, ctx.Err(), context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}
