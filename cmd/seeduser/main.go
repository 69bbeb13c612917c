// cmd/seeduser/main.go creates or updates the bootstrap ADMIN user.
// Usage: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seeduser
package main

import (
	"context"
	"os"
	"strings"

	"supplychainx/internal/config"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	email := strings.ToLower(envOr("SEED_ADMIN_EMAIL", "admin@supplychainx.local"))
	password := envOr("SEED_ADMIN_PASSWORD", "admin1234")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	db, err := infra.NewDatabase(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}

	admin := model.User{
		FirstName:    "Admin",
		LastName:     "SupplyChainX",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	result := db.WithContext(context.Background()).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "role", "updated_at"}),
	}).Create(&admin)
	if result.Error != nil {
		log.Fatal().Err(result.Error).Msg("upsert error")
	}
	log.Info().Str("email", email).Msg("admin user created/updated")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
