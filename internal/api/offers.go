package api

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// GetCollectionOffers fetches the open offers for a collection.
func (c *Client) GetCollectionOffers(ctx context.Context, slug string) (*OffersResponse, error) {
	var resp OffersResponse
	if err := c.get(ctx, "/offers/collection/"+slug, &resp); err != nil {
		return nil, fmt.Errorf("get collection offers %s: %w", slug, err)
	}
	return &resp, nil
}

// FetchHighestBid returns the highest single per-item bid for a collection
// and the consideration count backing it. Any failure degrades to (nil, 0):
// callers must treat nil as "unknown", never as a price of zero.
func (c *Client) FetchHighestBid(ctx context.Context, slug string) (*float64, int) {
	resp, err := c.GetCollectionOffers(ctx, slug)
	if err != nil {
		c.logger.Warn("fetch collection offers failed",
			"collection", slug,
			"err", err,
		)
		return nil, 0
	}

	return HighestSingleBid(resp.Offers, c.logger)
}

// HighestSingleBid scans offers for the maximum per-item bid value.
//
// An aggregate offer covering N items at total value V bids V/N per item.
// The winner is the maximum per-item value, and the returned count is the
// one backing that maximum, not the count of the largest total bid.
// Returns (nil, 0) when no offer yields a usable value.
func HighestSingleBid(offers []Offer, logger *slog.Logger) (*float64, int) {
	if logger == nil {
		logger = slog.Default()
	}

	var best *float64
	bestCount := 0

	for _, o := range offers {
		params := o.ProtocolData.Parameters
		if len(params.Offer) == 0 {
			continue
		}

		total, ok := baseUnitsToToken(params.Offer[0].StartAmount, TokenDecimals)
		if !ok {
			continue
		}

		count := 0
		if len(params.Consideration) > 0 {
			count, _ = strconv.Atoi(params.Consideration[0].StartAmount)
		}

		perItem := total
		if count > 0 {
			perItem = total / float64(count)
		}

		logger.Debug("offer",
			"total_bids", count,
			"total_value", total,
			"single_bid_value", perItem,
		)

		if best == nil || perItem > *best {
			v := perItem
			best = &v
			bestCount = count
		}
	}

	return best, bestCount
}
