package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/user-registry/adapters/event"
	"github.com/khoahotran/user-registry/adapters/persistence"
	userUC "github.com/khoahotran/user-registry/internal/application/usecase/user"
	"github.com/khoahotran/user-registry/internal/config"
	"github.com/khoahotran/user-registry/pkg/logger"
	"github.com/khoahotran/user-registry/pkg/tracing"
)

const consumerGroupID = "user-registry-worker"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("component", "worker"))
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("KAFKA_BROKERS is required for the worker", nil)
	}

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "user-registry-worker")
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

	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	processUserEventUC := userUC.NewProcessUserEventUseCase(userRepo, appLogger)

	consumer, err := event.NewKafkaConsumerClient(cfg, consumerGroupID, processUserEventUC, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka consumer", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicUserEvents), zap.String("group_id", consumerGroupID))
	if err := consumer.Run(ctx); err != nil {
		appLogger.Error("Worker stopped with error", err)
		return
	}
	appLogger.Info("Worker stopping")
}
