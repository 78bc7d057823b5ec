// Command seed ensures the single admin credential row exists and carries the
// configured username. A fresh row gets a random password; set a real one
// afterwards through the reset endpoint.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/config"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/infrastructure/auth"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/infrastructure/database"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/infrastructure/repositories"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	adminRepo := repositories.NewAdminRepository(db)
	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := adminRepo.FindFirst(ctx)
	switch {
	case err == nil:
		if existing.Username == cfg.AdminUsername {
			log.Printf("admin already has username %s", existing.Username)
			return
		}
		if err := adminRepo.UpdateUsername(ctx, existing.ID, cfg.AdminUsername); err != nil {
			log.Fatalf("update username: %v", err)
		}
		log.Printf("updated admin username to %s", cfg.AdminUsername)

	case err == domain.ErrAdminNotFound:
		raw := make([]byte, 16)
		if _, err := rand.Read(raw); err != nil {
			log.Fatalf("generate password: %v", err)
		}
		passwordHash, err := passwordSvc.Hash(hex.EncodeToString(raw))
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		admin := &domain.AdminCredential{
			Username:     cfg.AdminUsername,
			PasswordHash: passwordHash,
		}
		if err := adminRepo.Create(ctx, admin); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		log.Printf("created admin %s, use the reset endpoint to set a password", admin.Username)

	default:
		log.Fatalf("find admin: %v", err)
	}
}
