package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/finopenpos/backend/internal/domain/identity"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/finopenpos/backend/internal/infrastructure/config"
	"github.com/finopenpos/backend/internal/infrastructure/logger"
	"github.com/finopenpos/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// migrate applies the database schema and optionally seeds the first
// admin account so a fresh install can sign in.
func main() {
	var (
		seedAdmin     bool
		adminEmail    string
		adminName     string
		adminPassword string
		logLevel      string
	)

	flag.BoolVar(&seedAdmin, "seed-admin", false, "Create an initial admin user if none exists")
	flag.StringVar(&adminEmail, "admin-email", "admin@localhost", "Email for the seeded admin user")
	flag.StringVar(&adminName, "admin-name", "Administrator", "Name for the seeded admin user")
	flag.StringVar(&adminPassword, "admin-password", "", "Password for the seeded admin user (required with -seed-admin)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := persistence.AutoMigrate(db.DB); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Schema migration applied", zap.String("driver", cfg.Database.Driver))

	if !seedAdmin {
		return
	}

	if adminPassword == "" {
		log.Fatal("An admin password is required with -seed-admin")
	}

	ctx := context.Background()
	userRepo := persistence.NewGormUserRepository(db.DB)

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Info("Admin user already exists, skipping seed", zap.String("email", adminEmail))
		return
	} else if !errors.Is(err, shared.ErrNotFound) {
		log.Fatal("Failed to check for existing admin", zap.Error(err))
	}

	admin, err := identity.NewUser(adminEmail, adminName, adminPassword, identity.RoleAdmin)
	if err != nil {
		log.Fatal("Invalid admin user details", zap.Error(err))
	}

	if err := userRepo.Save(ctx, admin); err != nil {
		log.Fatal("Failed to create admin user", zap.Error(err))
	}

	log.Info("Admin user created", zap.String("email", adminEmail))
}
