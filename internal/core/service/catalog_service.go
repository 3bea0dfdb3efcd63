package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

// CatalogService loads merchants and menus into the place store. It is the
// operator path for filling the catalog and is not exposed over HTTP.
type CatalogService struct {
	writer ports.CatalogWriter
	logger zerolog.Logger
}

func NewCatalogService(writer ports.CatalogWriter, logger zerolog.Logger) *CatalogService {
	return &CatalogService{writer: writer, logger: logger}
}

// Import validates every entry before writing any of them, then creates each
// merchant followed by its categories. Menu items without an id get one.
// It returns the number of merchants written.
func (s *CatalogService) Import(ctx context.Context, entries []domain.CatalogEntry) (int, error) {
	for i := range entries {
		if err := validateEntry(&entries[i]); err != nil {
			return 0, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}

	for i := range entries {
		e := &entries[i]
		if err := s.writer.CreateMerchant(ctx, &e.Merchant); err != nil {
			return i, fmt.Errorf("create merchant %q: %w", e.Merchant.Name, err)
		}
		for j := range e.Menu {
			e.Menu[j].MerchantID = e.Merchant.ID
			if err := s.writer.CreateMenuCategory(ctx, &e.Menu[j]); err != nil {
				return i, fmt.Errorf("create menu category %q: %w", e.Menu[j].Name, err)
			}
		}
		s.logger.Info().
			Str("merchant_id", e.Merchant.ID).
			Str("name", e.Merchant.Name).
			Int("categories", len(e.Menu)).
			Msg("merchant imported")
	}
	return len(entries), nil
}

func validateEntry(e *domain.CatalogEntry) error {
	m := e.Merchant
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidMerchant)
	}
	if m.Location.Lat < -90 || m.Location.Lat > 90 || m.Location.Lng < -180 || m.Location.Lng > 180 {
		return fmt.Errorf("%w: location %v,%v out of range", domain.ErrInvalidMerchant, m.Location.Lat, m.Location.Lng)
	}

	seen := make(map[string]bool)
	for ci := range e.Menu {
		cat := &e.Menu[ci]
		if cat.Name == "" {
			return fmt.Errorf("%w: menu category %d has no name", domain.ErrInvalidMerchant, ci)
		}
		for ii := range cat.Items {
			item := &cat.Items[ii]
			if item.Name == "" || item.Price < 0 {
				return fmt.Errorf("%w: item %d of %q needs a name and a non-negative price", domain.ErrInvalidMerchant, ii, cat.Name)
			}
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			if seen[item.ID] {
				return fmt.Errorf("%w: duplicate menu item id %q", domain.ErrInvalidMerchant, item.ID)
			}
			seen[item.ID] = true
		}
	}
	return nil
}
