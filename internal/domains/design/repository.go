package design

import (
	"context"

	"github.com/google/uuid"
)

// Repository - data access cho designs table
type Repository interface {
	// Create insert row mới, fill ID + CreatedAt vào d
	Create(ctx context.Context, d *Design) error

	// List trả về designs mới nhất trước, tối đa limit rows
	List(ctx context.Context, limit int) ([]Design, error)

	// GetByID trả về ErrNotFound nếu không có row
	GetByID(ctx context.Context, id uuid.UUID) (*Design, error)

	// UpdatePartial chỉ set các field non-nil trong req
	// Trả về row sau update; ErrNotFound nếu không có row
	UpdatePartial(ctx context.Context, id uuid.UUID, req UpdateDesignRequest) (*Design, error)

	// Delete theo id; ErrNotFound nếu không có row
	Delete(ctx context.Context, id uuid.UUID) error
}
