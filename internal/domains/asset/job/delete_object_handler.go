package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	types "skateshop-backend/internal/shared"
)

// ObjectDeleter - phần MinIO storage mà handler cần
type ObjectDeleter interface {
	Delete(ctx context.Context, key string) error
}

// DeleteAssetObjectHandler dọn object trong MinIO sau khi row asset đã xóa.
// Row là source of truth: job fail thì asynq retry, object mồ côi thì
// sweep job nhặt sau.
type DeleteAssetObjectHandler struct {
	storage ObjectDeleter
}

func NewDeleteAssetObjectHandler(storage ObjectDeleter) *DeleteAssetObjectHandler {
	return &DeleteAssetObjectHandler{storage: storage}
}

func (h *DeleteAssetObjectHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload types.DeleteAssetObjectPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal delete_object payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("asset_id", payload.AssetID).
		Str("object_key", payload.ObjectKey).
		Msg("Deleting asset object")

	if err := h.storage.Delete(ctx, payload.ObjectKey); err != nil {
		log.Error().
			Err(err).
			Str("object_key", payload.ObjectKey).
			Msg("Failed to delete asset object")
		return fmt.Errorf("delete object %s: %w", payload.ObjectKey, err)
	}

	log.Info().
		Str("object_key", payload.ObjectKey).
		Msg("Asset object deleted")

	return nil
}
