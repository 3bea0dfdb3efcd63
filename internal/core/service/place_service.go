package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

// PlaceService serves merchants with their locations and menus.
type PlaceService struct {
	repo   ports.PlaceRepository
	logger zerolog.Logger
}

func NewPlaceService(repo ports.PlaceRepository, logger zerolog.Logger) *PlaceService {
	return &PlaceService{repo: repo, logger: logger}
}

func (s *PlaceService) All(ctx context.Context) ([]*domain.Merchant, error) {
	merchants, err := s.repo.ListMerchants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	return merchants, nil
}

// InRadius returns merchants within q.RadiusKm of q.Center, nearest first.
func (s *PlaceService) InRadius(ctx context.Context, q ports.RadiusQuery) ([]*domain.Merchant, error) {
	merchants, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		m    *domain.Merchant
		dist float64
	}
	var in []ranked
	for _, m := range merchants {
		d := q.Center.DistanceKm(m.Location)
		if d <= q.RadiusKm {
			in = append(in, ranked{m: m, dist: d})
		}
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i].dist < in[j].dist })

	out := make([]*domain.Merchant, len(in))
	for i, r := range in {
		out[i] = r.m
	}
	return out, nil
}

func (s *PlaceService) Info(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	if merchantID == "" {
		return nil, domain.ErrMerchantNotFound
	}
	return s.repo.FindMerchant(ctx, merchantID)
}

// Menu returns the merchant's categories. Unknown merchants yield
// domain.ErrMerchantNotFound rather than an empty menu.
func (s *PlaceService) Menu(ctx context.Context, merchantID string) ([]*domain.MenuCategory, error) {
	if _, err := s.Info(ctx, merchantID); err != nil {
		return nil, err
	}
	categories, err := s.repo.MenuCategories(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	return categories, nil
}
