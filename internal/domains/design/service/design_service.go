package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"skateshop-backend/internal/domains/design"
)

type DesignService struct {
	repo design.Repository
}

func NewService(repo design.Repository) design.Service {
	return &DesignService{repo: repo}
}

func (s *DesignService) Create(ctx context.Context, req design.CreateDesignRequest) (*design.Design, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d := &design.Design{
		DeckUID:       req.DeckUID,
		DeckURL:       req.DeckURL,
		WheelUID:      req.WheelUID,
		WheelURL:      req.WheelURL,
		GriptapeUID:   req.GriptapeUID,
		GriptapeURL:   req.GriptapeURL,
		TruckColor:    req.TruckColor,
		BoltColor:     req.BoltColor,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
		PreviewURL:    req.PreviewURL,
		Status:        design.StatusSubmitted,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	log.Info().
		Str("design_id", d.ID.String()).
		Str("deck", d.DeckUID).
		Str("wheel", d.WheelUID).
		Msg("Design submitted")

	return d, nil
}

func (s *DesignService) List(ctx context.Context) ([]design.Design, error) {
	return s.repo.List(ctx, design.MaxListLimit)
}

func (s *DesignService) GetByID(ctx context.Context, id uuid.UUID) (*design.Design, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DesignService) Update(ctx context.Context, id uuid.UUID, req design.UpdateDesignRequest) (*design.Design, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdatePartial(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		log.Info().
			Str("design_id", id.String()).
			Str("status", *req.Status).
			Msg("Design status updated")
	}

	return updated, nil
}

func (s *DesignService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("design_id", id.String()).Msg("Design deleted")
	return nil
}
