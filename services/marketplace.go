package services

import (
	"context"

	"github.com/ecocycle/server/core"
)

// MarketplaceService serves the read-only refurbished-device listings.
type MarketplaceService struct {
	storage core.ListingStorage
}

func NewMarketplaceService(storage core.ListingStorage) *MarketplaceService {
	return &MarketplaceService{storage: storage}
}

// List returns listings, optionally filtered by category and type.
// Empty filter values match everything.
func (s *MarketplaceService) List(_ context.Context, category string, typ core.ListingType) ([]*core.Listing, error) {
	listings, err := s.storage.ListListings()
	if err != nil {
		return nil, err
	}

	filtered := make([]*core.Listing, 0, len(listings))
	for _, l := range listings {
		if category != "" && l.Category != category {
			continue
		}
		if typ != "" && l.Type != typ {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered, nil
}
