package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/khoahotran/user-registry/adapters/persistence"
	"github.com/khoahotran/user-registry/internal/config"
	"github.com/khoahotran/user-registry/internal/domain/user"
	"github.com/khoahotran/user-registry/pkg/logger"
)

func main() {
	fmt.Println("adding user into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)

	nu := &user.NewUser{
		Name:    os.Getenv("SEED_USER_NAME"),
		Email:   os.Getenv("SEED_USER_EMAIL"),
		Phone:   os.Getenv("SEED_USER_PHONE"),
		Address: os.Getenv("SEED_USER_ADDRESS"),
	}
	if nu.Email == "" {
		log.Fatal("SEED_USER_EMAIL is not set")
	}

	pool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	svc := user.NewService(persistence.NewPostgresUserRepo(pool, appLogger))

	existing, err := svc.FindByEmail(ctx, nu.Email)
	if err != nil {
		log.Fatalf("cannot check user: %v", err)
	}
	if existing != nil {
		appLogger.Info("user already exists, skipping", zap.Int64("user_id", existing.ID))
		return
	}

	u, err := svc.Register(ctx, nu)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added user '%s' with id %d successfully!\n", u.Email, u.ID)
}
