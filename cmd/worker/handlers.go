package main

import (
	"github.com/hibiken/asynq"

	assetJob "skateshop-backend/internal/domains/asset/job"
	types "skateshop-backend/internal/shared"
	"skateshop-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Storage handlers
	deleteAssetObject *assetJob.DeleteAssetObjectHandler
	sweepOrphans      *assetJob.SweepOrphansHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		deleteAssetObject: assetJob.NewDeleteAssetObjectHandler(c.Storage),
		sweepOrphans:      assetJob.NewSweepOrphansHandler(c.AssetRepo, c.Storage),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Storage tasks
	mux.HandleFunc(types.TypeDeleteAssetObject, h.deleteAssetObject.ProcessTask)
	mux.HandleFunc(types.TypeSweepOrphans, h.sweepOrphans.ProcessTask)
}
