package api

import (
	"context"
	"fmt"
)

// GetBestListings fetches the best current listings for a collection.
func (c *Client) GetBestListings(ctx context.Context, slug string) (*ListingsResponse, error) {
	var resp ListingsResponse
	if err := c.get(ctx, "/listings/collection/"+slug+"/best", &resp); err != nil {
		return nil, fmt.Errorf("get best listings %s: %w", slug, err)
	}
	return &resp, nil
}

// FetchFloorPrice returns the minimum listing price for a collection in token
// units. Any failure degrades to nil ("unknown"), never to zero.
func (c *Client) FetchFloorPrice(ctx context.Context, slug string) *float64 {
	resp, err := c.GetBestListings(ctx, slug)
	if err != nil {
		c.logger.Warn("fetch best listings failed",
			"collection", slug,
			"err", err,
		)
		return nil
	}

	return FloorPrice(resp.Listings)
}

// FloorPrice returns the minimum converted price across listings that carry a
// usable current price. Listings with a missing or unparseable price are
// skipped. Returns nil when no listing has a usable price.
func FloorPrice(listings []Listing) *float64 {
	var floor *float64

	for _, l := range listings {
		if l.Price == nil {
			continue
		}

		decimals := l.Price.Current.Decimals
		if decimals == 0 {
			decimals = TokenDecimals
		}

		v, ok := baseUnitsToToken(l.Price.Current.Value, decimals)
		if !ok {
			continue
		}

		if floor == nil || v < *floor {
			floor = &v
		}
	}

	return floor
}
