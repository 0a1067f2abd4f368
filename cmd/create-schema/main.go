package main

import (
	"context"
	"log"
	"os"

	pg "adopet-backend/internal/adapters/storage/postgres"

	"github.com/joho/godotenv"
)

// Crea (idempotente) el esquema que usa el repo Postgres de animales.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required")
	}

	db, err := pg.Open(dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	schemaSQL := `
CREATE TABLE IF NOT EXISTS animals (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,

    name TEXT NOT NULL,
    type TEXT NOT NULL,
    gender TEXT NOT NULL,
    race TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',

    -- referencias al media store, en orden de subida
    pictures JSONB NOT NULL DEFAULT '[]'::jsonb,

    status TEXT NOT NULL CHECK (status IN ('available', 'pending', 'adopted')),

    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_animals_owner ON animals (owner_id, created_at);
CREATE INDEX IF NOT EXISTS idx_animals_available ON animals (status, created_at);
`

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}
	log.Println("✓ animals schema ready")
}
