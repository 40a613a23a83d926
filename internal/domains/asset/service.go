package asset

import (
	"context"

	"github.com/google/uuid"
)

// Service - business logic cho asset catalog
type Service interface {
	List(ctx context.Context) ([]Asset, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// RegisterByURL upsert theo (kind, uid) với URL có sẵn
	RegisterByURL(ctx context.Context, req RegisterAssetRequest) (*Asset, error)

	// RegisterByFile upload file lên object storage trước,
	// chỉ ghi row khi đã có URL confirmed
	RegisterByFile(ctx context.Context, req UploadAssetRequest, file UploadFile) (*Asset, error)

	// Update partial theo id; file (nếu có) supersede req.URL
	Update(ctx context.Context, id uuid.UUID, req UpdateAssetRequest, file *UploadFile) (*Asset, error)

	// Delete xóa row; object trong storage được dọn best-effort
	// (storage failure không bao giờ block row deletion)
	Delete(ctx context.Context, id uuid.UUID) error
}
