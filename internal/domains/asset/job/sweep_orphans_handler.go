package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"skateshop-backend/internal/domains/asset"
)

// SweepStorage - list + delete + URL mapping, MinIO storage satisfies
type SweepStorage interface {
	ObjectDeleter
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	PublicURL(key string) string
}

// ================================================
// ORPHAN SWEEP JOB HANDLER
// ================================================
//
// Chạy theo cron. Object nào trong prefix assets/ mà không còn row nào
// reference thì xóa. Đây là lưới an toàn cho các delete job bị fail
// hết retry hoặc upload thành công nhưng insert row fail.

type SweepOrphansHandler struct {
	repo    asset.Repository
	storage SweepStorage
}

func NewSweepOrphansHandler(repo asset.Repository, storage SweepStorage) *SweepOrphansHandler {
	return &SweepOrphansHandler{
		repo:    repo,
		storage: storage,
	}
}

func (h *SweepOrphansHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	log.Info().Msg("Starting orphan sweep")

	urls, err := h.repo.ListURLs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Orphan sweep: failed to list asset URLs")
		return err
	}

	referenced := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		referenced[u] = struct{}{}
	}

	keys, err := h.storage.ListKeys(ctx, "assets/")
	if err != nil {
		log.Error().Err(err).Msg("Orphan sweep: failed to list storage keys")
		return err
	}

	var swept, failed int
	for _, key := range keys {
		if _, ok := referenced[h.storage.PublicURL(key)]; ok {
			continue
		}

		// Từng object fail riêng lẻ không dừng cả sweep
		if err := h.storage.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("object_key", key).Msg("Orphan sweep: delete failed")
			failed++
			continue
		}
		swept++
	}

	log.Info().
		Int("scanned", len(keys)).
		Int("swept", swept).
		Int("failed", failed).
		Msg("Orphan sweep completed")

	return nil
}

var _ asynq.Handler = (*SweepOrphansHandler)(nil)
