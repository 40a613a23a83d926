// cmd/seed/main.go
// Seed dữ liệu mẫu cho development: vài deck/wheel và một design demo.
// Chạy lại bao nhiêu lần cũng được - asset upsert theo (kind, uid).
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"skateshop-backend/internal/config"
	"skateshop-backend/internal/domains/asset"
	assetRepo "skateshop-backend/internal/domains/asset/repository"
	"skateshop-backend/internal/domains/design"
	designRepo "skateshop-backend/internal/domains/design/repository"
	"skateshop-backend/internal/infrastructure/database"
	pkgdatabase "skateshop-backend/pkg/database"
)

const migrationFile = "migrations/001_init.sql"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	log.Println("🌱 Seeding database...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Schema idempotent (CREATE IF NOT EXISTS), apply atomic
	if err := applyMigration(ctx, db); err != nil {
		log.Fatalf("❌ Failed to apply migration: %v", err)
	}
	log.Println("✓ Schema ready")

	assets := assetRepo.NewAssetRepository(db.Pool)
	designs := designRepo.NewDesignRepository(db.Pool)

	seedAssets := []asset.Asset{
		{Kind: asset.KindDeck, UID: "deck-01", URL: "/uploads/deck-01.png"},
		{Kind: asset.KindDeck, UID: "deck-02", URL: "/uploads/deck-02.png"},
		{Kind: asset.KindDeck, UID: "deck-03", URL: "/uploads/deck-03.png"},
		{Kind: asset.KindWheel, UID: "wheel-01", URL: "/uploads/wheel-01.png"},
		{Kind: asset.KindWheel, UID: "wheel-02", URL: "/uploads/wheel-02.png"},
	}

	for i := range seedAssets {
		if err := assets.Upsert(ctx, &seedAssets[i]); err != nil {
			log.Fatalf("❌ Failed to seed asset %s: %v", seedAssets[i].UID, err)
		}
		log.Printf("✓ Asset %s/%s", seedAssets[i].Kind, seedAssets[i].UID)
	}

	email := "demo@skateshop.local"
	demo := design.Design{
		DeckUID:       "deck-01",
		DeckURL:       "/uploads/deck-01.png",
		WheelUID:      "wheel-01",
		WheelURL:      "/uploads/wheel-01.png",
		TruckColor:    "#6F6E6A",
		BoltColor:     "#000000",
		CustomerEmail: &email,
		Status:        design.StatusSubmitted,
	}
	if err := designs.Create(ctx, &demo); err != nil {
		log.Fatalf("❌ Failed to seed demo design: %v", err)
	}
	log.Printf("✓ Demo design %s", demo.ID)

	log.Println("✅ Seed completed")
}

func applyMigration(ctx context.Context, db *database.PostgresDB) error {
	schema, err := os.ReadFile(migrationFile)
	if err != nil {
		return err
	}

	return pkgdatabase.WithTransaction(ctx, db.Pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, string(schema))
		return err
	})
}
