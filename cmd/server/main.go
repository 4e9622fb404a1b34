package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/studio-admin-api/internal/api"
	"github.com/studio-admin-api/internal/config"
	"github.com/studio-admin-api/internal/database"
	"github.com/studio-admin-api/internal/models"
	"github.com/studio-admin-api/internal/repository"
	"github.com/studio-admin-api/internal/service"
	"github.com/studio-admin-api/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.RunMigrations("./migrations"); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	repos := repository.New(db)
	services := service.NewServices(repos, log)

	if err := seedAdmin(context.Background(), repos.Account, cfg.Auth, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin account")
	}

	sessions := api.NewSessionStore(cfg.Auth.SessionTTL)
	router := api.NewRouter(services, sessions, db, cfg, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// seedAdmin bootstraps the first admin account. It runs only when an admin
// email is configured and the accounts table is still empty.
func seedAdmin(ctx context.Context, accounts repository.AccountRepository, cfg config.AuthConfig, log zerolog.Logger) error {
	if cfg.AdminEmail == "" {
		return nil
	}

	count, err := accounts.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account := &models.Account{
		Name:         "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := accounts.Create(ctx, account); err != nil {
		return err
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("Seeded initial admin account")
	return nil
}
