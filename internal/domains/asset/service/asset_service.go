package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"skateshop-backend/internal/domains/asset"
	"skateshop-backend/internal/infrastructure/storage"
	types "skateshop-backend/internal/shared"
	"skateshop-backend/pkg/cache"
)

const (
	listCacheKey = "assets:list"
	listCacheTTL = 60 * time.Second
)

// ObjectStorage là phần của MinIO storage mà asset service cần
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	ObjectKeyFromURL(rawURL string) (string, bool)
}

// TaskEnqueuer - *asynq.Client satisfies
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type AssetService struct {
	repo      asset.Repository
	cache     cache.Cache
	storage   ObjectStorage
	processor *storage.ImageProcessor
	queue     TaskEnqueuer // nil-able: không có worker thì dọn object inline
}

func NewService(
	repo asset.Repository,
	c cache.Cache,
	objStorage ObjectStorage,
	processor *storage.ImageProcessor,
	queue TaskEnqueuer,
) asset.Service {
	return &AssetService{
		repo:      repo,
		cache:     c,
		storage:   objStorage,
		processor: processor,
		queue:     queue,
	}
}

// List - catalog listing với cache
func (s *AssetService) List(ctx context.Context) ([]asset.Asset, error) {
	var cached []asset.Asset
	found, err := s.cache.Get(ctx, listCacheKey, &cached)
	if err != nil {
		// Cache lỗi không được làm hỏng listing
		log.Warn().Err(err).Msg("Asset list cache read failed")
	}
	if found {
		return cached, nil
	}

	assets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, listCacheKey, assets, listCacheTTL); err != nil {
		log.Warn().Err(err).Msg("Asset list cache write failed")
	}

	return assets, nil
}

func (s *AssetService) GetByID(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	return s.repo.GetByID(ctx, id)
}

// RegisterByURL - upsert theo (kind, uid)
func (s *AssetService) RegisterByURL(ctx context.Context, req asset.RegisterAssetRequest) (*asset.Asset, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := &asset.Asset{
		Kind: asset.AssetKind(req.Kind),
		UID:  req.UID,
		URL:  req.URL,
	}
	if err := s.repo.Upsert(ctx, a); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	log.Info().
		Str("kind", string(a.Kind)).
		Str("uid", a.UID).
		Msg("Asset registered")

	return a, nil
}

// RegisterByFile - upload trước, ghi row sau
// Upload fail → abort, không có orphan row trỏ vào object không tồn tại
func (s *AssetService) RegisterByFile(ctx context.Context, req asset.UploadAssetRequest, file asset.UploadFile) (*asset.Asset, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	publicURL, err := s.uploadTexture(ctx, req.UID, file)
	if err != nil {
		return nil, err
	}

	a := &asset.Asset{
		Kind: asset.AssetKind(req.Kind),
		UID:  req.UID,
		URL:  publicURL,
	}
	if err := s.repo.Upsert(ctx, a); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	log.Info().
		Str("kind", string(a.Kind)).
		Str("uid", a.UID).
		Str("url", a.URL).
		Msg("Asset uploaded and registered")

	return a, nil
}

// Update - partial update; file supersede URL trong request
func (s *AssetService) Update(ctx context.Context, id uuid.UUID, req asset.UpdateAssetRequest, file *asset.UploadFile) (*asset.Asset, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.UID = req.UID
	if req.Kind != "" {
		existing.Kind = asset.AssetKind(req.Kind)
	}

	if file != nil {
		newURL, err := s.uploadTexture(ctx, id.String(), *file)
		if err != nil {
			return nil, err
		}
		existing.URL = newURL
	} else if req.URL != "" {
		existing.URL = req.URL
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return existing, nil
}

// Delete - saga: row deletion là source of truth,
// object cleanup là side effect best-effort (enqueue → fallback inline)
func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if key, ok := s.storage.ObjectKeyFromURL(a.URL); ok {
		s.cleanupObject(ctx, a.ID, key)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)

	log.Info().Str("asset_id", id.String()).Msg("Asset deleted")
	return nil
}

// uploadTexture validate ảnh, upload bản gốc + thumbnail
// Thumbnail fail chỉ log - admin grid tự fallback về bản gốc
func (s *AssetService) uploadTexture(ctx context.Context, keyBase string, file asset.UploadFile) (string, error) {
	if err := s.processor.ValidateImage(file.Data); err != nil {
		return "", fmt.Errorf("%w: %v", asset.ErrStorage, err)
	}

	ext := path.Ext(file.Name)
	if ext == "" {
		ext = ".bin"
	}
	key := fmt.Sprintf("assets/%s-%d%s", keyBase, time.Now().UnixMilli(), ext)
	contentType := http.DetectContentType(file.Data)

	publicURL, err := s.storage.Upload(ctx, key, file.Data, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", asset.ErrStorage, err)
	}

	if thumb, err := s.processor.Thumbnail(file.Data); err == nil {
		thumbKey := "thumbs/" + strings.TrimPrefix(key, "assets/")
		if _, err := s.storage.Upload(ctx, thumbKey, thumb, "image/jpeg"); err != nil {
			log.Warn().Err(err).Str("key", thumbKey).Msg("Thumbnail upload failed")
		}
	} else {
		log.Warn().Err(err).Str("key", key).Msg("Thumbnail generation failed")
	}

	return publicURL, nil
}

// cleanupObject enqueue task xóa object cho worker
// Queue không available → xóa trực tiếp; mọi failure chỉ log
func (s *AssetService) cleanupObject(ctx context.Context, assetID uuid.UUID, key string) {
	if s.queue != nil {
		payload, err := json.Marshal(types.DeleteAssetObjectPayload{
			AssetID:   assetID.String(),
			ObjectKey: key,
		})
		if err == nil {
			task := asynq.NewTask(types.TypeDeleteAssetObject, payload)
			if _, err := s.queue.Enqueue(task, asynq.Queue(types.QueueStorage), asynq.MaxRetry(3)); err == nil {
				return
			}
			log.Warn().Str("key", key).Msg("Enqueue object cleanup failed, deleting inline")
		}
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Object cleanup failed (row deletion proceeds)")
	}
}

func (s *AssetService) invalidateListCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		log.Warn().Err(err).Msg("Asset list cache invalidation failed")
	}
}
