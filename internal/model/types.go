package model

import "time"

// CollectionSnapshot is one persisted observation of a collection's market
// state. Rows are append-only: never updated, never deleted. At most one row
// exists per (collection, ts) pair, enforced by a uniqueness constraint.
type CollectionSnapshot struct {
	ID         int64     // Surrogate key (BIGSERIAL)
	Collection string    // Collection slug (e.g., "pridepunks2018")
	HighestBid *float64  // Highest single per-item bid, token units; nil = unknown
	FloorPrice *float64  // Minimum listing price, token units; nil = unknown
	NumBids    int       // Consideration count backing the highest bid
	TS         time.Time // Observation time (UTC)
}
