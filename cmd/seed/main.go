package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-auth-service/config"
	"github.com/oksasatya/go-auth-service/internal/domain/entity"
	"github.com/oksasatya/go-auth-service/internal/infrastructure/security"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email, err := entity.NewEmail("demo@example.com")
	if err != nil {
		log.Fatalf("invalid seed email: %v", err)
	}
	plain, err := entity.NewPlainPassword("Demo!Pass123")
	if err != nil {
		log.Fatalf("invalid seed password: %v", err)
	}

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	hash, err := hasher.Hash(plain)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	id := entity.GenerateUserID()
	var got string
	err = db.QueryRow(`
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id
	`, id.String(), email.String(), hash.String(), time.Now().UTC()).Scan(&got)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=Demo!Pass123\n", got, email.String())
}
