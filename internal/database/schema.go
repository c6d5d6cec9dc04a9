package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS collection_snapshots (
    id          BIGSERIAL PRIMARY KEY,
    collection  TEXT NOT NULL,
    highest_bid DOUBLE PRECISION,
    floor_price DOUBLE PRECISION,
    num_bids    INTEGER DEFAULT 0,
    ts          TIMESTAMPTZ NOT NULL,
    UNIQUE (collection, ts)
)`

// EnsureSchema creates the snapshot table if it does not exist.
// Must run before any writes.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createSnapshotsTable); err != nil {
		return fmt.Errorf("create collection_snapshots table: %w", err)
	}
	return nil
}
