package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skateshop-backend/internal/domains/asset"
)

type assetRepository struct {
	pool *pgxpool.Pool
}

func NewAssetRepository(pool *pgxpool.Pool) asset.Repository {
	return &assetRepository{pool: pool}
}

func (r *assetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	query := `
        SELECT id, kind, uid, url, created_at
        FROM assets
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := []asset.Asset{}
	for rows.Next() {
		var a asset.Asset
		if err := rows.Scan(&a.ID, &a.Kind, &a.UID, &a.URL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}

	return assets, nil
}

func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	query := `
        SELECT id, kind, uid, url, created_at
        FROM assets
        WHERE id = $1
    `

	a := &asset.Asset{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Kind, &a.UID, &a.URL, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, asset.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return a, nil
}

// Upsert - create-or-replace theo natural key
// ON CONFLICT giữ id + created_at của row cũ, chỉ thay url
func (r *assetRepository) Upsert(ctx context.Context, a *asset.Asset) error {
	query := `
        INSERT INTO assets (kind, uid, url)
        VALUES ($1, $2, $3)
        ON CONFLICT (kind, uid) DO UPDATE SET url = EXCLUDED.url
        RETURNING id, created_at
    `

	err := r.pool.QueryRow(ctx, query, a.Kind, a.UID, a.URL).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert asset: %w", err)
	}

	return nil
}

func (r *assetRepository) Update(ctx context.Context, a *asset.Asset) error {
	query := `
        UPDATE assets
        SET kind = $2, uid = $3, url = $4
        WHERE id = $1
        RETURNING created_at
    `

	err := r.pool.QueryRow(ctx, query, a.ID, a.Kind, a.UID, a.URL).Scan(&a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return asset.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return asset.ErrNotFound
	}

	return nil
}

func (r *assetRepository) ListURLs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT url FROM assets`)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset urls: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("failed to scan url: %w", err)
		}
		urls = append(urls, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate urls: %w", err)
	}

	return urls, nil
}
