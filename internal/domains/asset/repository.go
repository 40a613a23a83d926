package asset

import (
	"context"

	"github.com/google/uuid"
)

// Repository - data access cho assets table
type Repository interface {
	// List trả về toàn bộ catalog, mới nhất trước
	List(ctx context.Context) ([]Asset, error)

	// GetByID trả về ErrNotFound nếu không có row
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// Upsert theo natural key (kind, uid): tạo mới hoặc thay url
	// Fill ID + CreatedAt vào a
	Upsert(ctx context.Context, a *Asset) error

	// Update theo surrogate id; ErrNotFound nếu không có row
	Update(ctx context.Context, a *Asset) error

	// Delete theo surrogate id; ErrNotFound nếu không có row
	Delete(ctx context.Context, id uuid.UUID) error

	// ListURLs trả về tất cả URL đang được reference
	// Dùng cho orphan sweep job
	ListURLs(ctx context.Context) ([]string, error)
}
