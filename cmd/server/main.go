package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/user-registry/adapters/event"
	httpAdapter "github.com/khoahotran/user-registry/adapters/http"
	"github.com/khoahotran/user-registry/adapters/persistence"
	"github.com/khoahotran/user-registry/internal/application/service"
	userUC "github.com/khoahotran/user-registry/internal/application/usecase/user"
	"github.com/khoahotran/user-registry/internal/config"
	"github.com/khoahotran/user-registry/pkg/logger"
	"github.com/khoahotran/user-registry/pkg/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "user-registry-api")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	if tp != nil {
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	var publisher service.UserEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Info("Kafka brokers not set, user events disabled")
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)

	// Use Cases
	registerUserUseCase := userUC.NewRegisterUserUseCase(userRepo, publisher, appLogger)
	getUserUseCase := userUC.NewGetUserUseCase(userRepo, appLogger)

	// HTTP
	userHandler := httpAdapter.NewUserHandler(registerUserUseCase, getUserUseCase, appLogger)
	router := httpAdapter.NewRouter(userHandler, dbPool, appLogger)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		appLogger.Info("Server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
}
