package design

import (
	"context"

	"github.com/google/uuid"
)

// MaxListLimit - admin listing cap cố định
const MaxListLimit = 200

// Service - business logic cho submitted designs
type Service interface {
	// Create validate rồi insert; status luôn SUBMITTED
	Create(ctx context.Context, req CreateDesignRequest) (*Design, error)

	// List trả về designs mới nhất trước, cap MaxListLimit
	List(ctx context.Context) ([]Design, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Design, error)

	// Update partial (admin approve/reject qua Status)
	Update(ctx context.Context, id uuid.UUID, req UpdateDesignRequest) (*Design, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
